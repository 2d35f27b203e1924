package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// SlotType time-of-day classification of a slot
type SlotType string

const (
	SlotEarly     SlotType = "early"
	SlotMorning   SlotType = "morning"
	SlotAfternoon SlotType = "afternoon"
	SlotEvening   SlotType = "evening"
	SlotLate      SlotType = "late"
)

// IsOffPeak returns true for early and late slots
func (t SlotType) IsOffPeak() bool {
	return t == SlotEarly || t == SlotLate
}

// DemandLevel demand class of a slot
type DemandLevel string

const (
	DemandLow    DemandLevel = "low"
	DemandMedium DemandLevel = "medium"
	DemandHigh   DemandLevel = "high"
)

// WeatherCondition forecast condition for a date
type WeatherCondition string

const (
	WeatherClear     WeatherCondition = "clear"
	WeatherCloudy    WeatherCondition = "cloudy"
	WeatherRain      WeatherCondition = "rain"
	WeatherHeavyRain WeatherCondition = "heavy_rain"
	WeatherSnow      WeatherCondition = "snow"
	WeatherStorm     WeatherCondition = "storm"
)

// WeatherForecast weather signal for a date
type WeatherForecast struct {
	Condition   WeatherCondition `json:"condition"`
	Unavailable bool             `json:"unavailable"` // moves cannot be carried out on this date
	Description string           `json:"description,omitempty"`
}

// WeatherImpact weather annotation on a slot
type WeatherImpact struct {
	Condition  WeatherCondition `json:"condition"`
	Multiplier float64          `json:"multiplier"`
	Message    string           `json:"message"`
}

// TimeSlot a contiguous time window on a specific date
type TimeSlot struct {
	ID        string           `json:"id"`
	Date      time.Time        `json:"-"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	Type      SlotType         `json:"type"`
}

// EnhancedTimeSlot slot with demand and price annotations.
// Immutable once generated; regenerating a day recomputes every slot.
type EnhancedTimeSlot struct {
	TimeSlot
	Multiplier float64        `json:"multiplier"`
	Demand     DemandLevel    `json:"demand"`
	Popular    bool           `json:"popular"`
	Weather    *WeatherImpact `json:"weather,omitempty"`
	Savings    *int           `json:"savings,omitempty"` // percent below 1.0
	Factors    []SlotFactor   `json:"factors"`
}

// SlotFactor one named factor of a slot multiplier
type SlotFactor struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// SlotID builds the slot identifier from date and start time
func SlotID(date time.Time, start types.TimeString) string {
	return fmt.Sprintf("%s_%s", date.Format(DateFormat), start)
}

// IsWeekend returns true for Saturday and Sunday
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
