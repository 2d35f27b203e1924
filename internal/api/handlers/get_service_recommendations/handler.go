package get_service_recommendations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/service/recommendation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации запроса"
	msgNoItems            = "не указано ни одной вещи для перевозки"
	msgInvalidInput       = "некорректные параметры: бюджет, предпочтения или уровень помощи"
)

type Handler struct {
	service RecommendationService
	logger  Logger
}

func NewHandler(service RecommendationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/service-recommendations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RecommendationsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /service-recommendations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /service-recommendations - Validation failed: %v", err)
		handlers.RespondValidationError(w, msgValidationFailed, err)
		return
	}

	recs, err := h.service.GetServiceRecommendations(r.Context(), req.Items, req.Distance, req.Requirements)
	if err != nil {
		switch {
		case errors.Is(err, recommendation.ErrNoItems):
			h.logger.Warn("POST /service-recommendations - No items")
			handlers.RespondBadRequest(w, msgNoItems)

		case errors.Is(err, recommendation.ErrInvalidInput):
			h.logger.Warn("POST /service-recommendations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /service-recommendations - Failed to get recommendations: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /service-recommendations - Recommendations built: items=%d, count=%d", len(req.Items), len(recs))
	handlers.RespondJSON(w, http.StatusOK, &RecommendationsResponse{Recommendations: recs})
}
