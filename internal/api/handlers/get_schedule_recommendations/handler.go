package get_schedule_recommendations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/service/availability"
)

const (
	msgInvalidQuery = "некорректные параметры запроса"
	msgInvalidInput = "некорректные параметры подбора: flexibility, preferredTime или travelTime"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule-recommendations
// Query params: startDate (required), flexibility, preferredTime, excludeWeekends, weekendsRequested, limit, travelTime
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startDate, opts, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /schedule-recommendations - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	recs, err := h.service.GetScheduleRecommendations(r.Context(), startDate, opts)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /schedule-recommendations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /schedule-recommendations - Failed to get recommendations: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule-recommendations - Recommendations retrieved: flexibility=%s, count=%d",
		opts.Flexibility, len(recs))
	handlers.RespondJSON(w, http.StatusOK, FromRecommendations(recs))
}
