package get_available_slots

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/availability"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date  string                    `json:"date"`
	Slots []domain.EnhancedTimeSlot `json:"slots"`
}

// parseQuery разбирает date и travelTime
func parseQuery(dateStr, travelStr string) (time.Time, availability.SlotOptions, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, availability.SlotOptions{}, err
	}

	var opts availability.SlotOptions
	if travelStr != "" {
		travel, err := strconv.Atoi(travelStr)
		if err != nil {
			return time.Time{}, availability.SlotOptions{}, fmt.Errorf("travelTime: %w", err)
		}
		opts.TravelTimeMinutes = travel
	}

	return date, opts, nil
}
