package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/availability"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// SlotService интерфейс модели доступности слотов
type SlotService interface {
	GetAvailableTimeSlots(ctx context.Context, date time.Time, opts availability.SlotOptions) ([]domain.EnhancedTimeSlot, error)
	BookTimeSlot(ctx context.Context, date time.Time, start types.TimeString) (domain.BookingResult, error)
	CancelBooking(ctx context.Context, date time.Time, start types.TimeString) (bool, error)
}

// PricingService интерфейс движка расчета стоимости
type PricingService interface {
	CalculatePricing(ctx context.Context, in *domain.PricingInput) (*domain.PricingBreakdown, error)
}

// PromoUsageRepository интерфейс счетчика использований промокодов
type PromoUsageRepository interface {
	IncrementPromoUsage(ctx context.Context, code string) error
}

// Metrics интерфейс метрик бронирования
type Metrics interface {
	SlotBooking(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
