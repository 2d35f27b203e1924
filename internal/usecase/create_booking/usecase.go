package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-QuoteService/internal/service/availability"
	"github.com/m04kA/SMC-QuoteService/internal/service/pricing"
)

// UseCase use case для бронирования переезда
type UseCase struct {
	slots   SlotService
	pricing PricingService
	promos  PromoUsageRepository
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slots SlotService,
	pricingService PricingService,
	promos PromoUsageRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		slots:   slots,
		pricing: pricingService,
		promos:  promos,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет use case бронирования.
// Слот занимается атомарно; если расчет или списание промокода не удались, слот освобождается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%s, items=%d, date=%s, time=%s",
		req.ServiceType, len(req.Items), req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Находим слот среди доступных (после бронирования он из списка пропадет)
	slot, err := uc.resolveSlot(ctx, req)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to resolve slot: %v", err)
		return nil, err
	}

	// 3. Занимаем слот
	result, err := uc.slots.BookTimeSlot(ctx, req.Date, req.StartTime)
	if err != nil {
		uc.metrics.SlotBooking(outcomeFailed)
		uc.logger.Error("CreateBooking: failed to book slot: %v", err)
		return nil, fmt.Errorf("%w: failed to book slot: %v", ErrInternal, err)
	}
	if !result.Success {
		uc.metrics.SlotBooking(outcomeRejected)
		uc.logger.Warn("CreateBooking: slot %s rejected: %s", slot.ID, result.Error)
		return nil, fmt.Errorf("%w: %s", ErrSlotNotAvailable, result.Error)
	}

	// 4. Считаем стоимость с множителем занятого слота
	quote, err := uc.pricing.CalculatePricing(ctx, &domain.PricingInput{
		Items:               req.Items,
		ServiceType:         req.ServiceType,
		Distance:            req.Distance,
		EstimatedDuration:   req.EstimatedDuration,
		Date:                req.Date,
		Slot:                slot,
		Pickup:              req.Pickup,
		Dropoff:             req.Dropoff,
		PromoCode:           req.PromoCode,
		IsFirstTimeCustomer: req.IsFirstTimeCustomer,
	})
	if err != nil {
		uc.release(ctx, req, result.BookingID)
		return nil, mapPricingError(err)
	}

	// 5. Списываем использование промокода только для подтвержденного бронирования
	if quote.Promo != nil && quote.Promo.Valid {
		if err := uc.promos.IncrementPromoUsage(ctx, quote.Promo.Code); err != nil {
			uc.release(ctx, req, result.BookingID)
			if errors.Is(err, catalog.ErrPromoUsageExhausted) || errors.Is(err, catalog.ErrPromoCodeNotFound) {
				uc.logger.Warn("CreateBooking: promo %s no longer available: %v", quote.Promo.Code, err)
				return nil, fmt.Errorf("%w: %s", ErrPromoUnavailable, quote.Promo.Code)
			}
			uc.logger.Error("CreateBooking: failed to consume promo %s: %v", quote.Promo.Code, err)
			return nil, fmt.Errorf("%w: failed to consume promo code: %v", ErrInternal, err)
		}
	}

	uc.metrics.SlotBooking(outcomeBooked)
	uc.logger.Info("CreateBooking: successfully created booking id=%s, total=%s", result.BookingID, quote.Total)

	return &Response{
		BookingID: result.BookingID,
		Date:      req.Date,
		Slot:      *slot,
		Quote:     quote,
	}, nil
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

// release освобождает занятый слот после неудачи
func (uc *UseCase) release(ctx context.Context, req *Request, bookingID string) {
	uc.metrics.SlotBooking(outcomeFailed)

	if _, err := uc.slots.CancelBooking(ctx, req.Date, req.StartTime); err != nil {
		uc.logger.Error("CreateBooking: failed to release slot for booking id=%s: %v", bookingID, err)
		return
	}
	uc.logger.Warn("CreateBooking: booking id=%s rolled back", bookingID)
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
