package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// ReservationRepository интерфейс хранилища занятых слотов
type ReservationRepository interface {
	Reserve(ctx context.Context, date time.Time, start types.TimeString) error
	Release(ctx context.Context, date time.Time, start types.TimeString) (bool, error)
	ListByDate(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// HolidayCalendar интерфейс календаря нерабочих дней
type HolidayCalendar interface {
	HolidayName(date time.Time) (string, bool)
}

// WeatherProvider интерфейс провайдера прогноза погоды
type WeatherProvider interface {
	Forecast(ctx context.Context, date time.Time) (domain.WeatherForecast, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
