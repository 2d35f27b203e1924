package pricing

import (
	"fmt"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// validateInput проверяет входные данные расчета.
// Пустой список вещей проверяется первым.
func validateInput(in *domain.PricingInput) error {
	if len(in.Items) == 0 {
		return ErrNoItems
	}

	if len(in.Items) > domain.MaxItemsPerBooking {
		return fmt.Errorf("%w: at most %d items per booking", ErrInvalidInput, domain.MaxItemsPerBooking)
	}

	for i, item := range in.Items {
		if item.ID == "" {
			return fmt.Errorf("%w: item #%d has no id", ErrInvalidInput, i)
		}
		if item.Quantity < 1 || item.Quantity > domain.MaxItemQuantity {
			return fmt.Errorf("%w: item %s quantity must be between 1 and %d", ErrInvalidInput, item.ID, domain.MaxItemQuantity)
		}
		if item.Volume < 0 || item.Weight < 0 {
			return fmt.Errorf("%w: item %s volume and weight must be non-negative", ErrInvalidInput, item.ID)
		}
	}

	if in.Distance < 0 || in.Distance > domain.MaxDistanceKm {
		return fmt.Errorf("%w: distance must be between 0 and %d km", ErrInvalidInput, domain.MaxDistanceKm)
	}

	if in.EstimatedDuration < 0 || in.EstimatedDuration > domain.MaxEstimatedHours {
		return fmt.Errorf("%w: estimated duration must be between 0 and %d hours", ErrInvalidInput, domain.MaxEstimatedHours)
	}

	if in.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if in.Pickup.Floor < 0 || in.Dropoff.Floor < 0 {
		return fmt.Errorf("%w: floor must be non-negative", ErrInvalidInput)
	}

	if in.Slot != nil && in.Slot.Multiplier < 0 {
		return fmt.Errorf("%w: slot multiplier must be non-negative", ErrInvalidInput)
	}

	return nil
}
