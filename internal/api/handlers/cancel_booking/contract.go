package cancel_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

type SlotService interface {
	CancelBooking(ctx context.Context, date time.Time, start types.TimeString) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
