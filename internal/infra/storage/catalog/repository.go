package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// Catalog статические данные реестра: тарифы, промокоды, праздничные дни
type Catalog struct {
	ServiceTypes []domain.ServiceType `yaml:"service_types" validate:"required,min=1,dive"`
	PromoCodes   []domain.PromoCode   `yaml:"promo_codes" validate:"dive"`
	Holidays     []Holiday            `yaml:"holidays" validate:"dive"`
}

// Holiday нерабочий день
type Holiday struct {
	Date string `yaml:"date" validate:"required,datetime=2006-01-02"`
	Name string `yaml:"name" validate:"required"`
}

// Repository реестр тарифов, промокодов и праздников.
// Тарифы и праздники неизменяемы; у промокодов меняется только счетчик использований.
type Repository struct {
	serviceTypes []domain.ServiceType
	serviceIndex map[string]int
	holidays     map[string]string

	mu         sync.RWMutex
	promoCodes map[string]domain.PromoCode
}

// NewRepository создает реестр из каталога
func NewRepository(c Catalog) *Repository {
	r := &Repository{
		serviceTypes: make([]domain.ServiceType, len(c.ServiceTypes)),
		serviceIndex: make(map[string]int, len(c.ServiceTypes)),
		holidays:     make(map[string]string, len(c.Holidays)),
		promoCodes:   make(map[string]domain.PromoCode, len(c.PromoCodes)),
	}

	copy(r.serviceTypes, c.ServiceTypes)
	for i, st := range r.serviceTypes {
		r.serviceIndex[st.ID] = i
	}

	for _, h := range c.Holidays {
		r.holidays[h.Date] = h.Name
	}

	for _, p := range c.PromoCodes {
		r.promoCodes[domain.NormalizePromoCode(p.Code)] = p
	}

	return r
}

// NewDefaultRepository создает реестр со встроенными данными
func NewDefaultRepository() *Repository {
	return NewRepository(DefaultCatalog())
}

// GetServiceType получает тариф по ID
func (r *Repository) GetServiceType(ctx context.Context, id string) (*domain.ServiceType, error) {
	i, ok := r.serviceIndex[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrServiceTypeNotFound, id)
	}

	st := r.serviceTypes[i]
	return &st, nil
}

// ListServiceTypes возвращает все тарифы в порядке каталога
func (r *Repository) ListServiceTypes(ctx context.Context) ([]domain.ServiceType, error) {
	result := make([]domain.ServiceType, len(r.serviceTypes))
	copy(result, r.serviceTypes)
	return result, nil
}

// GetPromoCode получает промокод (без учета регистра).
// Возвращается копия: изменение счетчика возможно только через IncrementPromoUsage.
func (r *Repository) GetPromoCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.promoCodes[domain.NormalizePromoCode(code)]
	if !ok {
		return nil, fmt.Errorf("%w: code=%s", ErrPromoCodeNotFound, code)
	}

	return &p, nil
}

// IncrementPromoUsage атомарно увеличивает счетчик использований промокода.
// Счетчик только растет; при достижении лимита возвращается ErrPromoUsageExhausted.
func (r *Repository) IncrementPromoUsage(ctx context.Context, code string) error {
	key := domain.NormalizePromoCode(code)

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.promoCodes[key]
	if !ok {
		return fmt.Errorf("%w: code=%s", ErrPromoCodeNotFound, code)
	}

	if p.IsExhausted() {
		return fmt.Errorf("%w: code=%s", ErrPromoUsageExhausted, code)
	}

	p.UsedCount++
	r.promoCodes[key] = p
	return nil
}

// HolidayName возвращает название праздника, если дата нерабочая
func (r *Repository) HolidayName(date time.Time) (string, bool) {
	if name, ok := r.holidays[date.Format(domain.DateFormat)]; ok {
		return name, true
	}

	// Эти дни закрыты каждый год, даже если их нет в таблице
	switch {
	case date.Month() == time.January && date.Day() == 1:
		return "New Year's Day", true
	case date.Month() == time.December && date.Day() == 25:
		return "Christmas Day", true
	case date.Month() == time.December && date.Day() == 26:
		return "Boxing Day", true
	}

	return "", false
}
