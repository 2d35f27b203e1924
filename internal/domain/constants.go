package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default slot configuration values
const (
	DefaultSlotDurationMinutes   = 120
	DefaultSlotBufferMinutes     = 30
	DefaultMinAdvanceNoticeHours = 2
	DefaultMaxAdvanceBookingDays = 30
	DefaultAlternativeSearchDays = 14
	DefaultAlternativeDatesCount = 3
)

// Default pricing values
const (
	DefaultVATRate              = 0.20
	DefaultMinimumHours         = 2.0
	DefaultQuoteCacheTTLMinutes = 5
)

// Business validation constants
const (
	MaxItemsPerBooking     = 500
	MaxItemQuantity        = 1000
	MaxDistanceKm          = 2000
	MaxEstimatedHours      = 48
	MaxScheduleResults     = 50
	DefaultScheduleResults = 5
	MaxTravelTimeMinutes   = 240
)
