package get_service_recommendations

import "github.com/m04kA/SMC-QuoteService/internal/domain"

// RecommendationsRequest HTTP request model
type RecommendationsRequest struct {
	Items        []domain.BookingItem        `json:"items" validate:"max=500,dive"`
	Distance     float64                     `json:"distance" validate:"gte=0,lte=2000"`
	Requirements *domain.ServiceRequirements `json:"requirements,omitempty"`
}

// RecommendationsResponse HTTP response model
type RecommendationsResponse struct {
	Recommendations []domain.ServiceRecommendation `json:"recommendations"`
}
