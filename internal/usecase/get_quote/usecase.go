package get_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/availability"
	"github.com/m04kA/SMC-QuoteService/internal/service/pricing"
)

// UseCase use case расчета стоимости переезда
type UseCase struct {
	slots   SlotService
	pricing PricingService
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slots SlotService, pricingService PricingService, logger Logger) *UseCase {
	return &UseCase{
		slots:   slots,
		pricing: pricingService,
		logger:  logger,
	}
}

// Execute выполняет use case: находит выбранный слот и считает стоимость с его множителем
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetQuote: service=%s, items=%d, date=%s, time=%s",
		req.ServiceType, len(req.Items), req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Находим слот, если он выбран
	var slot *domain.EnhancedTimeSlot
	if !req.StartTime.IsZero() {
		found, err := uc.resolveSlot(ctx, req)
		if err != nil {
			uc.logger.Warn("GetQuote: failed to resolve slot: %v", err)
			return nil, err
		}
		slot = found
	}

	// 3. Считаем стоимость
	quote, err := uc.pricing.CalculatePricing(ctx, req.pricingInput(slot))
	if err != nil {
		return nil, mapPricingError(err)
	}

	uc.logger.Info("GetQuote: service=%s, total=%s", quote.ServiceType, quote.Total)

	return &Response{Quote: quote, Slot: slot}, nil
}

// resolveSlot ищет слот со временем начала req.StartTime среди доступных на дату
func (uc *UseCase) resolveSlot(ctx context.Context, req *Request) (*domain.EnhancedTimeSlot, error) {
	available, err := uc.slots.GetAvailableTimeSlots(ctx, req.Date, availability.SlotOptions{
		TravelTimeMinutes: req.TravelTimeMinutes,
	})
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	for i := range available {
		if available[i].StartTime == req.StartTime {
			slot := available[i]
			return &slot, nil
		}
	}

	return nil, fmt.Errorf("%w: %s at %s", ErrSlotNotAvailable, req.Date.Format(domain.DateFormat), req.StartTime)
}

// mapPricingError переводит ошибки движка расчета в ошибки use case
func mapPricingError(err error) error {
	switch {
	case errors.Is(err, pricing.ErrNoItems):
		return ErrNoItems
	case errors.Is(err, pricing.ErrInvalidServiceType):
		return fmt.Errorf("%w: %v", ErrServiceTypeNotFound, err)
	case errors.Is(err, pricing.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: failed to calculate pricing: %v", ErrInternal, err)
	}
}
