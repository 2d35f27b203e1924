package availability

import (
	"fmt"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// Config параметры модели доступности.
// Передается в сервис при создании и дальше не меняется.
type Config struct {
	WeekdayOpen  types.TimeString
	WeekdayClose types.TimeString
	WeekendOpen  types.TimeString
	WeekendClose types.TimeString

	SlotDurationMinutes   int
	SlotBufferMinutes     int
	MinAdvanceNoticeHours int
	MaxAdvanceBookingDays int
	AlternativeSearchDays int
	AlternativeDatesCount int

	// Границы классификации слотов по времени начала
	EarlyBefore     types.TimeString
	MorningBefore   types.TimeString
	AfternoonBefore types.TimeString
	EveningBefore   types.TimeString

	PeakStart    types.TimeString // включительно
	PeakEnd      types.TimeString // не включительно
	PopularTimes []types.TimeString

	WeekendFactor float64
	PeakFactor    float64
	PopularFactor float64
	EarlyFactor   float64
	LateFactor    float64
	EveningFactor float64

	WeatherFactors map[domain.WeatherCondition]float64
}

// DefaultConfig конфигурация по умолчанию
func DefaultConfig() Config {
	return Config{
		WeekdayOpen:  "07:00",
		WeekdayClose: "22:00",
		WeekendOpen:  "08:00",
		WeekendClose: "18:00",

		SlotDurationMinutes:   domain.DefaultSlotDurationMinutes,
		SlotBufferMinutes:     domain.DefaultSlotBufferMinutes,
		MinAdvanceNoticeHours: domain.DefaultMinAdvanceNoticeHours,
		MaxAdvanceBookingDays: domain.DefaultMaxAdvanceBookingDays,
		AlternativeSearchDays: domain.DefaultAlternativeSearchDays,
		AlternativeDatesCount: domain.DefaultAlternativeDatesCount,

		EarlyBefore:     "08:00",
		MorningBefore:   "12:00",
		AfternoonBefore: "17:00",
		EveningBefore:   "19:00",

		PeakStart:    "09:00",
		PeakEnd:      "13:00",
		PopularTimes: []types.TimeString{"09:30", "10:30", "12:00"},

		WeekendFactor: 1.15,
		PeakFactor:    1.10,
		PopularFactor: 1.05,
		EarlyFactor:   0.85,
		LateFactor:    0.90,
		EveningFactor: 1.10,

		WeatherFactors: map[domain.WeatherCondition]float64{
			domain.WeatherClear:     1.00,
			domain.WeatherCloudy:    1.00,
			domain.WeatherRain:      1.05,
			domain.WeatherHeavyRain: 1.15,
			domain.WeatherSnow:      1.25,
		},
	}
}

// Validate проверяет согласованность конфигурации
func (c Config) Validate() error {
	for _, ts := range []types.TimeString{
		c.WeekdayOpen, c.WeekdayClose, c.WeekendOpen, c.WeekendClose,
		c.EarlyBefore, c.MorningBefore, c.AfternoonBefore, c.EveningBefore,
		c.PeakStart, c.PeakEnd,
	} {
		if err := ts.Validate(); err != nil {
			return fmt.Errorf("%w: time %q: %v", ErrInvalidInput, ts, err)
		}
	}

	if !c.WeekdayOpen.IsBefore(c.WeekdayClose) || !c.WeekendOpen.IsBefore(c.WeekendClose) {
		return fmt.Errorf("%w: operating hours must open before they close", ErrInvalidInput)
	}

	if c.SlotDurationMinutes <= 0 || c.SlotBufferMinutes < 0 {
		return fmt.Errorf("%w: slot duration must be positive and buffer non-negative", ErrInvalidInput)
	}

	if c.MinAdvanceNoticeHours < 0 || c.MaxAdvanceBookingDays < 0 {
		return fmt.Errorf("%w: booking window must be non-negative", ErrInvalidInput)
	}

	for _, f := range []float64{c.WeekendFactor, c.PeakFactor, c.PopularFactor, c.EarlyFactor, c.LateFactor, c.EveningFactor} {
		if f < 0 {
			return fmt.Errorf("%w: slot factors must be non-negative", ErrInvalidInput)
		}
	}

	return nil
}

// stepMinutes шаг генерации слотов
func (c Config) stepMinutes() int {
	return c.SlotDurationMinutes + c.SlotBufferMinutes
}

// weatherFactor множитель для погодного условия (неизвестное условие = 1)
func (c Config) weatherFactor(condition domain.WeatherCondition) float64 {
	if f, ok := c.WeatherFactors[condition]; ok {
		return f
	}
	return 1
}
