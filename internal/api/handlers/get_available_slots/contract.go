package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/availability"
)

type AvailabilityService interface {
	GetAvailableTimeSlots(ctx context.Context, date time.Time, opts availability.SlotOptions) ([]domain.EnhancedTimeSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
