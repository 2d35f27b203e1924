package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

type AvailabilityService interface {
	CheckDateAvailability(ctx context.Context, date time.Time) domain.AvailabilityCheck
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
