package create_booking

import (
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// Request модель запроса на бронирование переезда
type Request struct {
	Items               []domain.BookingItem
	ServiceType         string
	Distance            float64 // км
	EstimatedDuration   float64 // часы
	Date                time.Time
	StartTime           types.TimeString // Время начала слота (например, "09:30")
	TravelTimeMinutes   int
	Pickup              domain.PropertyAccessDetails
	Dropoff             domain.PropertyAccessDetails
	PromoCode           string
	IsFirstTimeCustomer bool
}

// Response модель ответа с подтвержденным бронированием
type Response struct {
	BookingID string
	Date      time.Time
	Slot      domain.EnhancedTimeSlot
	Quote     *domain.PricingBreakdown
}
