package create_booking

import (
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	createBooking "github.com/m04kA/SMC-QuoteService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Items               []domain.BookingItem         `json:"items" validate:"max=500,dive"`
	ServiceType         string                       `json:"serviceType" validate:"required"`
	Distance            float64                      `json:"distance" validate:"gte=0,lte=2000"`
	EstimatedDuration   float64                      `json:"estimatedDuration" validate:"gte=0,lte=48"`
	BookingDate         string                       `json:"bookingDate" validate:"required"` // "2026-10-20"
	StartTime           string                       `json:"startTime" validate:"required"`   // "09:30"
	TravelTime          int                          `json:"travelTime,omitempty" validate:"gte=0,lte=240"`
	Pickup              domain.PropertyAccessDetails `json:"pickup"`
	Dropoff             domain.PropertyAccessDetails `json:"dropoff"`
	PromoCode           string                       `json:"promoCode,omitempty"`
	IsFirstTimeCustomer bool                         `json:"isFirstTimeCustomer"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID   string                   `json:"bookingId"`
	BookingDate string                   `json:"bookingDate"`
	Slot        domain.EnhancedTimeSlot  `json:"slot"`
	Quote       *domain.PricingBreakdown `json:"quote"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Items:               r.Items,
		ServiceType:         r.ServiceType,
		Distance:            r.Distance,
		EstimatedDuration:   r.EstimatedDuration,
		Date:                bookingDate,
		StartTime:           startTime,
		TravelTimeMinutes:   r.TravelTime,
		Pickup:              r.Pickup,
		Dropoff:             r.Dropoff,
		PromoCode:           r.PromoCode,
		IsFirstTimeCustomer: r.IsFirstTimeCustomer,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:   resp.BookingID,
		BookingDate: resp.Date.Format(domain.DateFormat),
		Slot:        resp.Slot,
		Quote:       resp.Quote,
	}
}
