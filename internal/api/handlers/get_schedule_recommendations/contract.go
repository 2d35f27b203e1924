package get_schedule_recommendations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/availability"
)

type ScheduleService interface {
	GetScheduleRecommendations(ctx context.Context, startDate time.Time, opts availability.ScheduleOptions) ([]domain.ScheduleRecommendation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
