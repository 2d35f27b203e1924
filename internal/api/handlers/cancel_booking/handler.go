package cancel_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/availability"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime = "некорректный формат времени начала, ожидается HH:MM"
	msgNotFound    = "бронирование слота не найдено"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/slots/{date}/{startTime}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем дату и время из URL
	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("PATCH /slots/{date}/{startTime}/cancel - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(vars["startTime"])
	if err != nil {
		h.logger.Warn("PATCH /slots/{date}/{startTime}/cancel - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	released, err := h.service.CancelBooking(r.Context(), date, startTime)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PATCH /slots/{date}/{startTime}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("PATCH /slots/{date}/{startTime}/cancel - Failed to cancel: date=%s, time=%s, error=%v",
				vars["date"], startTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !released {
		h.logger.Warn("PATCH /slots/{date}/{startTime}/cancel - Not booked: date=%s, time=%s", vars["date"], startTime)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	h.logger.Info("PATCH /slots/{date}/{startTime}/cancel - Slot released: date=%s, time=%s", vars["date"], startTime)
	handlers.RespondJSON(w, http.StatusOK, &CancelResponse{
		Date:      date.Format(domain.DateFormat),
		StartTime: startTime.String(),
		Cancelled: true,
	})
}
