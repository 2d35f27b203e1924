package validate_promo

import (
	"net/http"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации запроса"
)

type Handler struct {
	service PromoService
	logger  Logger
}

func NewHandler(service PromoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/promo-codes/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidatePromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /promo-codes/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /promo-codes/validate - Validation failed: %v", err)
		handlers.RespondValidationError(w, msgValidationFailed, err)
		return
	}

	// Отклоненный код возвращается как результат с valid=false, а не как ошибка
	result, err := h.service.ValidatePromoCode(r.Context(), req.Code, domain.MoneyFromPounds(req.OrderValue), req.PromoContext())
	if err != nil {
		h.logger.Error("POST /promo-codes/validate - Failed to validate promo code: code=%s, error=%v", req.Code, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /promo-codes/validate - code=%s, valid=%t, discount=%s", result.Code, result.Valid, result.Discount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
