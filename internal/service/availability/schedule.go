package availability

import (
	"context"
	"fmt"
	"sort"
	"time"

	jnow "github.com/jinzhu/now"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// GetScheduleRecommendations подбирает пары дата+слот с учетом гибкости клиента.
// Результат отсортирован по убыванию приоритета; при равном приоритете - по времени.
func (s *Service) GetScheduleRecommendations(ctx context.Context, startDate time.Time, opts ScheduleOptions) ([]domain.ScheduleRecommendation, error) {
	// 1. Валидация входных данных
	if opts.Flexibility == "" {
		opts.Flexibility = domain.FlexibilityExact
	}
	if !opts.Flexibility.IsValid() {
		return nil, fmt.Errorf("%w: unknown flexibility %q", ErrInvalidInput, opts.Flexibility)
	}
	if !opts.PreferredTime.IsZero() {
		if err := opts.PreferredTime.Validate(); err != nil {
			return nil, fmt.Errorf("%w: preferred time: %v", ErrInvalidInput, err)
		}
	}
	if opts.TravelTimeMinutes < 0 || opts.TravelTimeMinutes > domain.MaxTravelTimeMinutes {
		return nil, fmt.Errorf("%w: travel time must be between 0 and %d minutes", ErrInvalidInput, domain.MaxTravelTimeMinutes)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = domain.DefaultScheduleResults
	}
	if limit > domain.MaxScheduleResults {
		limit = domain.MaxScheduleResults
	}

	current := s.timeProvider.Now()
	today := jnow.With(current).BeginningOfDay()
	tomorrow := today.AddDate(0, 0, 1)
	first := calendarDay(startDate, current.Location())

	s.logger.Info("GetScheduleRecommendations: start=%s, flexibility=%s, preferred=%q, limit=%d",
		first.Format(domain.DateFormat), opts.Flexibility, opts.PreferredTime, limit)

	// 2. Собираем все доступные слоты в окне поиска
	result := make([]domain.ScheduleRecommendation, 0)
	for i := 0; i < opts.Flexibility.SearchDays(); i++ {
		day := first.AddDate(0, 0, i)
		weekend := domain.IsWeekend(day)

		if opts.ExcludeWeekends && weekend {
			continue
		}

		if check := s.checkDate(ctx, day, current); !check.Available {
			continue
		}

		slots, err := s.buildSlots(ctx, day, current, opts.TravelTimeMinutes)
		if err != nil {
			s.logger.Error("GetScheduleRecommendations: date=%s: %v", day.Format(domain.DateFormat), err)
			return nil, err
		}

		for _, slot := range slots {
			priority, reasons := scoreSlot(slot, day, weekend, today, tomorrow, opts)
			result = append(result, domain.ScheduleRecommendation{
				Date:     day,
				Slot:     slot,
				Priority: priority,
				Reasons:  reasons,
			})
		}
	}

	// 3. Сортируем и обрезаем
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Priority > result[j].Priority
	})

	if len(result) > limit {
		result = result[:limit]
	}

	s.logger.Info("GetScheduleRecommendations: returning %d recommendations", len(result))
	return result, nil
}

// scoreSlot приоритет слота и причины, из которых он сложился
func scoreSlot(
	slot domain.EnhancedTimeSlot,
	day time.Time,
	weekend bool,
	today, tomorrow time.Time,
	opts ScheduleOptions,
) (float64, []string) {
	priority := 0.0
	reasons := make([]string, 0)

	if !opts.PreferredTime.IsZero() && slot.StartTime == opts.PreferredTime {
		priority += 2
		reasons = append(reasons, "Matches your preferred time")
	}

	if slot.Savings != nil {
		priority += 1 + float64(*slot.Savings)/10
		reasons = append(reasons, fmt.Sprintf("Save %d%% with this slot", *slot.Savings))
	}

	asap := opts.Flexibility == domain.FlexibilityASAP

	if slot.Popular && !asap {
		priority++
		reasons = append(reasons, "Popular time slot")
	}

	if asap {
		switch {
		case day.Equal(today):
			priority += 3
			reasons = append(reasons, "Available today")
		case day.Equal(tomorrow):
			priority += 2
			reasons = append(reasons, "Available tomorrow")
		}
	}

	if weekend && !opts.WeekendsRequested {
		priority--
		reasons = append(reasons, "Weekend rates apply")
	}

	if slot.Type.IsOffPeak() {
		priority--
		reasons = append(reasons, "Outside regular hours")
	}

	return priority, reasons
}
