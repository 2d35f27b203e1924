package get_quote

import (
	"context"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/availability"
)

// SlotService интерфейс модели доступности слотов
type SlotService interface {
	GetAvailableTimeSlots(ctx context.Context, date time.Time, opts availability.SlotOptions) ([]domain.EnhancedTimeSlot, error)
}

// PricingService интерфейс движка расчета стоимости
type PricingService interface {
	CalculatePricing(ctx context.Context, in *domain.PricingInput) (*domain.PricingBreakdown, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
