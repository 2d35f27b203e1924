package get_service_recommendations

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

type RecommendationService interface {
	GetServiceRecommendations(ctx context.Context, items []domain.BookingItem, distance float64, req *domain.ServiceRequirements) ([]domain.ServiceRecommendation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
