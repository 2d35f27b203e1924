package availability

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jnow "github.com/jinzhu/now"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// Service модель доступности слотов и спроса
type Service struct {
	cfg          Config
	reservations ReservationRepository
	holidays     HolidayCalendar
	weather      WeatherProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	cfg Config,
	reservations ReservationRepository,
	holidays HolidayCalendar,
	weather WeatherProvider,
	logger Logger,
) *Service {
	return &Service{
		cfg:          cfg,
		reservations: reservations,
		holidays:     holidays,
		weather:      weather,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Config возвращает конфигурацию сервиса
func (s *Service) Config() Config {
	return s.cfg
}

// CheckDateAvailability проверяет, можно ли бронировать переезд на дату.
// Для праздника, погоды и слишком близкой даты подбираются ближайшие доступные даты.
func (s *Service) CheckDateAvailability(ctx context.Context, date time.Time) domain.AvailabilityCheck {
	current := s.timeProvider.Now()
	day := calendarDay(date, current.Location())

	check := s.checkDate(ctx, day, current)
	if check.Available {
		return check
	}

	switch check.ReasonCode {
	case domain.ReasonHoliday, domain.ReasonWeather, domain.ReasonTooSoon:
		check.AlternativeDates = s.findAlternativeDates(ctx, day, current)
	}

	s.logger.Info("CheckDateAvailability: date=%s unavailable, reason=%s, alternatives=%d",
		day.Format(domain.DateFormat), check.ReasonCode, len(check.AlternativeDates))

	return check
}

// GetAvailableTimeSlots возвращает свободные слоты на дату.
// Если дата недоступна, возвращается пустой список.
func (s *Service) GetAvailableTimeSlots(ctx context.Context, date time.Time, opts SlotOptions) ([]domain.EnhancedTimeSlot, error) {
	// 1. Валидация входных данных
	if opts.TravelTimeMinutes < 0 || opts.TravelTimeMinutes > domain.MaxTravelTimeMinutes {
		return nil, fmt.Errorf("%w: travel time must be between 0 and %d minutes", ErrInvalidInput, domain.MaxTravelTimeMinutes)
	}

	// 2. Получаем текущее время
	current := s.timeProvider.Now()
	day := calendarDay(date, current.Location())

	// 3. Проверяем доступность даты
	if check := s.checkDate(ctx, day, current); !check.Available {
		s.logger.Info("GetAvailableTimeSlots: date=%s unavailable: %s", day.Format(domain.DateFormat), check.ReasonCode)
		return []domain.EnhancedTimeSlot{}, nil
	}

	// 4. Генерируем слоты
	slots, err := s.buildSlots(ctx, day, current, opts.TravelTimeMinutes)
	if err != nil {
		s.logger.Error("GetAvailableTimeSlots: date=%s: %v", day.Format(domain.DateFormat), err)
		return nil, err
	}

	return slots, nil
}

// BookTimeSlot занимает слот.
// Дата и слот перепроверяются непосредственно перед записью, сама запись атомарна.
// Конфликт возвращается как результат с Success=false, а не ошибкой.
func (s *Service) BookTimeSlot(ctx context.Context, date time.Time, start types.TimeString) (domain.BookingResult, error) {
	// 1. Валидация входных данных
	if err := start.Validate(); err != nil {
		return domain.BookingResult{}, fmt.Errorf("%w: start time %q: %v", ErrInvalidInput, start, err)
	}

	current := s.timeProvider.Now()
	day := calendarDay(date, current.Location())

	s.logger.Info("BookTimeSlot: date=%s, start=%s", day.Format(domain.DateFormat), start)

	// 2. Повторная проверка даты
	if check := s.checkDate(ctx, day, current); !check.Available {
		s.logger.Warn("BookTimeSlot: date=%s unavailable: %s", day.Format(domain.DateFormat), check.ReasonCode)
		return domain.BookingResult{
			Success: false,
			Error:   fmt.Sprintf("%s: %s", msgDateUnavailable, check.Reason),
		}, nil
	}

	// 3. Слот должен быть в сетке дня
	if !containsStart(candidateStarts(s.cfg, domain.IsWeekend(day)), start) {
		s.logger.Warn("BookTimeSlot: no slot starts at %s on %s", start, day.Format(domain.DateFormat))
		return domain.BookingResult{Success: false, Error: msgSlotNotOffered}, nil
	}

	// 4. Минимальное время до начала
	if start.On(day).Before(current.Add(s.notice())) {
		s.logger.Warn("BookTimeSlot: slot %s on %s starts too soon", start, day.Format(domain.DateFormat))
		return domain.BookingResult{Success: false, Error: msgSlotTooSoon}, nil
	}

	// 5. Атомарно занимаем слот
	if err := s.reservations.Reserve(ctx, day, start); err != nil {
		if errors.Is(err, reservation.ErrSlotAlreadyReserved) {
			s.logger.Warn("BookTimeSlot: slot %s on %s already booked", start, day.Format(domain.DateFormat))
			return domain.BookingResult{Success: false, Error: msgSlotAlreadyBooked}, nil
		}
		s.logger.Error("BookTimeSlot: failed to reserve slot %s on %s: %v", start, day.Format(domain.DateFormat), err)
		return domain.BookingResult{}, fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
	}

	bookingID := fmt.Sprintf("BK-%s-%s-%d",
		day.Format("20060102"), strings.ReplaceAll(start.String(), ":", ""), current.UnixNano())

	s.logger.Info("BookTimeSlot: booked %s, id=%s", domain.SlotID(day, start), bookingID)

	return domain.BookingResult{Success: true, BookingID: bookingID}, nil
}

// CancelBooking освобождает слот. Возвращает false, если слот не был занят.
func (s *Service) CancelBooking(ctx context.Context, date time.Time, start types.TimeString) (bool, error) {
	if err := start.Validate(); err != nil {
		return false, fmt.Errorf("%w: start time %q: %v", ErrInvalidInput, start, err)
	}

	day := calendarDay(date, s.timeProvider.Now().Location())

	released, err := s.reservations.Release(ctx, day, start)
	if err != nil {
		s.logger.Error("CancelBooking: failed to release slot %s on %s: %v", start, day.Format(domain.DateFormat), err)
		return false, fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
	}

	s.logger.Info("CancelBooking: slot %s on %s released=%t", start, day.Format(domain.DateFormat), released)
	return released, nil
}

// checkDate проверяет дату по правилам в фиксированном порядке:
// прошлое, слишком скоро, слишком далеко, праздник, погода.
func (s *Service) checkDate(ctx context.Context, day time.Time, current time.Time) domain.AvailabilityCheck {
	today := jnow.With(current).BeginningOfDay()

	if day.Before(today) {
		return unavailable(domain.ReasonPastDate, "Date is in the past")
	}

	// Хотя бы последний слот дня должен начинаться не раньше now + notice
	starts := candidateStarts(s.cfg, domain.IsWeekend(day))
	if len(starts) == 0 || starts[len(starts)-1].On(day).Before(current.Add(s.notice())) {
		return unavailable(domain.ReasonTooSoon,
			fmt.Sprintf("Bookings require at least %d hours notice", s.cfg.MinAdvanceNoticeHours))
	}

	if s.cfg.MaxAdvanceBookingDays > 0 {
		horizon := today.AddDate(0, 0, s.cfg.MaxAdvanceBookingDays)
		if day.After(horizon) {
			return unavailable(domain.ReasonTooFar,
				fmt.Sprintf("Bookings can only be made up to %d days in advance", s.cfg.MaxAdvanceBookingDays))
		}
	}

	if name, ok := s.holidays.HolidayName(day); ok {
		return unavailable(domain.ReasonHoliday, fmt.Sprintf("Closed for %s", name))
	}

	if forecast := s.forecast(ctx, day); forecast.Unavailable {
		reason := forecast.Description
		if reason == "" {
			reason = "Moves are suspended due to severe weather"
		}
		return unavailable(domain.ReasonWeather, reason)
	}

	return domain.AvailabilityCheck{Available: true}
}

// findAlternativeDates ищет ближайшие доступные даты после day
func (s *Service) findAlternativeDates(ctx context.Context, day time.Time, current time.Time) []time.Time {
	result := make([]time.Time, 0, s.cfg.AlternativeDatesCount)

	for i := 1; i <= s.cfg.AlternativeSearchDays && len(result) < s.cfg.AlternativeDatesCount; i++ {
		candidate := day.AddDate(0, 0, i)

		check := s.checkDate(ctx, candidate, current)
		if check.Available {
			result = append(result, candidate)
			continue
		}
		// Дальше горизонта бронирования искать бессмысленно
		if check.ReasonCode == domain.ReasonTooFar {
			break
		}
	}

	return result
}

// buildSlots генерирует свободные слоты доступной даты
func (s *Service) buildSlots(ctx context.Context, day time.Time, current time.Time, travelMinutes int) ([]domain.EnhancedTimeSlot, error) {
	reserved, err := s.reservations.ListByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	taken := make(map[types.TimeString]struct{}, len(reserved))
	for _, r := range reserved {
		taken[r] = struct{}{}
	}

	weekend := domain.IsWeekend(day)
	forecast := s.forecast(ctx, day)

	earliest := current.Add(s.notice())
	if travel := current.Add(time.Duration(travelMinutes) * time.Minute); travel.After(earliest) {
		earliest = travel
	}

	result := make([]domain.EnhancedTimeSlot, 0)
	for _, start := range candidateStarts(s.cfg, weekend) {
		if _, ok := taken[start]; ok {
			continue
		}
		if start.On(day).Before(earliest) {
			continue
		}
		if s.tooCloseToReserved(start, reserved, travelMinutes) {
			continue
		}

		result = append(result, s.enhanceSlot(day, start, weekend, forecast))
	}

	return result, nil
}

// tooCloseToReserved true, если слот начинается в пределах travelMinutes после конца занятого слота
func (s *Service) tooCloseToReserved(start types.TimeString, reserved []types.TimeString, travelMinutes int) bool {
	if travelMinutes <= 0 {
		return false
	}

	startMin := start.Minutes()
	for _, r := range reserved {
		reservedEnd := r.Minutes() + s.cfg.SlotDurationMinutes
		if startMin >= reservedEnd && startMin < reservedEnd+travelMinutes {
			return true
		}
	}
	return false
}

// enhanceSlot рассчитывает тип, множитель, спрос и экономию слота
func (s *Service) enhanceSlot(day time.Time, start types.TimeString, weekend bool, forecast domain.WeatherForecast) domain.EnhancedTimeSlot {
	// Кандидаты генерируются так, что конец слота всегда в пределах суток
	end, _ := start.AddMinutes(s.cfg.SlotDurationMinutes)

	slotType := classifySlot(s.cfg, start)
	popular := s.cfg.isPopular(start)

	multiplier, factors := foldFactors(s.cfg, slotContext{
		start:   start,
		slot:    slotType,
		weekend: weekend,
		popular: popular,
		weather: forecast.Condition,
	})

	slot := domain.EnhancedTimeSlot{
		TimeSlot: domain.TimeSlot{
			ID:        domain.SlotID(day, start),
			Date:      day,
			StartTime: start,
			EndTime:   end,
			Type:      slotType,
		},
		Multiplier: multiplier,
		Demand:     demandFor(slotType, popular),
		Popular:    popular,
		Savings:    savingsFor(multiplier),
		Factors:    factors,
	}

	if forecast.Condition != "" && forecast.Condition != domain.WeatherClear {
		slot.Weather = &domain.WeatherImpact{
			Condition:  forecast.Condition,
			Multiplier: s.cfg.weatherFactor(forecast.Condition),
			Message:    weatherMessage(forecast),
		}
	}

	return slot
}

// forecast получает прогноз на дату.
// При недоступности провайдера применяется graceful degradation: считаем погоду ясной.
func (s *Service) forecast(ctx context.Context, day time.Time) domain.WeatherForecast {
	f, err := s.weather.Forecast(ctx, day)
	if err != nil {
		s.logger.Warn("Weather provider unavailable for date=%s, assuming clear: %v", day.Format(domain.DateFormat), err)
		return domain.WeatherForecast{Condition: domain.WeatherClear}
	}
	return f
}

func (s *Service) notice() time.Duration {
	return time.Duration(s.cfg.MinAdvanceNoticeHours) * time.Hour
}

func unavailable(code domain.UnavailableReason, reason string) domain.AvailabilityCheck {
	return domain.AvailabilityCheck{Available: false, ReasonCode: code, Reason: reason}
}

func weatherMessage(f domain.WeatherForecast) string {
	if f.Description != "" {
		return f.Description
	}
	return fmt.Sprintf("%s forecast", strings.ReplaceAll(string(f.Condition), "_", " "))
}

func containsStart(starts []types.TimeString, start types.TimeString) bool {
	for _, s := range starts {
		if s == start {
			return true
		}
	}
	return false
}

// calendarDay начало календарного дня date в часовом поясе loc
func calendarDay(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
