package domain

import "time"

// UnavailableReason machine-readable reason a date cannot be booked
type UnavailableReason string

const (
	ReasonPastDate UnavailableReason = "past_date"
	ReasonTooSoon  UnavailableReason = "too_soon"
	ReasonTooFar   UnavailableReason = "too_far"
	ReasonHoliday  UnavailableReason = "holiday"
	ReasonWeather  UnavailableReason = "weather"
)

// AvailabilityCheck result of a date availability check
type AvailabilityCheck struct {
	Available        bool              `json:"available"`
	ReasonCode       UnavailableReason `json:"reasonCode,omitempty"`
	Reason           string            `json:"reason,omitempty"`
	AlternativeDates []time.Time       `json:"alternativeDates,omitempty"`
}

// BookingResult result of a slot booking attempt.
// A conflict is a value: the caller re-queries availability and retries.
type BookingResult struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// FlexibilityMode how flexible the customer is about the date
type FlexibilityMode string

const (
	FlexibilityExact    FlexibilityMode = "exact"
	FlexibilityASAP     FlexibilityMode = "asap"
	FlexibilityFlexible FlexibilityMode = "flexible"
)

// SearchDays number of days searched for the mode
func (m FlexibilityMode) SearchDays() int {
	switch m {
	case FlexibilityASAP:
		return 7
	case FlexibilityFlexible:
		return 14
	default:
		return 1
	}
}

// IsValid returns true for a known mode
func (m FlexibilityMode) IsValid() bool {
	return m == FlexibilityExact || m == FlexibilityASAP || m == FlexibilityFlexible
}

// ScheduleRecommendation a scored date/slot combination
type ScheduleRecommendation struct {
	Date     time.Time        `json:"date"`
	Slot     EnhancedTimeSlot `json:"slot"`
	Priority float64          `json:"priority"`
	Reasons  []string         `json:"reasons"`
}
