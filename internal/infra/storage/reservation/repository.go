package reservation

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// Repository хранилище занятых слотов в памяти процесса.
// Ключ - дата (YYYY-MM-DD), значение - множество времен начала занятых слотов.
// Все операции сериализуются мьютексом, поэтому проверка и запись в Reserve атомарны.
type Repository struct {
	mu    sync.RWMutex
	slots map[string]map[types.TimeString]struct{}
}

// NewRepository создает пустое хранилище бронирований
func NewRepository() *Repository {
	return &Repository{
		slots: make(map[string]map[types.TimeString]struct{}),
	}
}

// Reserve атомарно занимает слот (date, start).
// Если слот уже занят, возвращает ErrSlotAlreadyReserved и ничего не меняет.
func (r *Repository) Reserve(ctx context.Context, date time.Time, start types.TimeString) error {
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}

	key := dateKey(date)

	r.mu.Lock()
	defer r.mu.Unlock()

	day, ok := r.slots[key]
	if !ok {
		day = make(map[types.TimeString]struct{})
		r.slots[key] = day
	}

	if _, taken := day[start]; taken {
		return fmt.Errorf("%w: date=%s, start=%s", ErrSlotAlreadyReserved, key, start)
	}

	day[start] = struct{}{}
	return nil
}

// Release освобождает слот. Возвращает false, если слот не был занят.
func (r *Repository) Release(ctx context.Context, date time.Time, start types.TimeString) (bool, error) {
	key := dateKey(date)

	r.mu.Lock()
	defer r.mu.Unlock()

	day, ok := r.slots[key]
	if !ok {
		return false, nil
	}

	if _, taken := day[start]; !taken {
		return false, nil
	}

	delete(day, start)
	if len(day) == 0 {
		delete(r.slots, key)
	}

	return true, nil
}

// ListByDate возвращает отсортированный список занятых слотов на дату
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day := r.slots[dateKey(date)]
	result := make([]types.TimeString, 0, len(day))
	for start := range day {
		result = append(result, start)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].IsBefore(result[j])
	})

	return result, nil
}

func dateKey(date time.Time) string {
	return date.Format(domain.DateFormat)
}
