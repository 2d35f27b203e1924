package get_quote

import (
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	getQuote "github.com/m04kA/SMC-QuoteService/internal/usecase/get_quote"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// QuoteRequest HTTP request model.
// Пустой список вещей пропускается валидатором: его отклоняет движок расчета.
type QuoteRequest struct {
	Items               []domain.BookingItem         `json:"items" validate:"max=500,dive"`
	ServiceType         string                       `json:"serviceType" validate:"required"`
	Distance            float64                      `json:"distance" validate:"gte=0,lte=2000"`           // км
	EstimatedDuration   float64                      `json:"estimatedDuration" validate:"gte=0,lte=48"`    // часы
	Date                string                       `json:"date" validate:"required,datetime=2006-01-02"` // "2026-10-20"
	StartTime           string                       `json:"startTime,omitempty" validate:"omitempty,datetime=15:04"`
	TravelTime          int                          `json:"travelTime,omitempty" validate:"gte=0,lte=240"`
	Pickup              domain.PropertyAccessDetails `json:"pickup"`
	Dropoff             domain.PropertyAccessDetails `json:"dropoff"`
	PromoCode           string                       `json:"promoCode,omitempty"`
	IsFirstTimeCustomer bool                         `json:"isFirstTimeCustomer"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Quote *domain.PricingBreakdown `json:"quote"`
	Slot  *domain.EnhancedTimeSlot `json:"slot,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*getQuote.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	var startTime types.TimeString
	if r.StartTime != "" {
		if startTime, err = types.NewTimeStringFromString(r.StartTime); err != nil {
			return nil, err
		}
	}

	return &getQuote.Request{
		Items:               r.Items,
		ServiceType:         r.ServiceType,
		Distance:            r.Distance,
		EstimatedDuration:   r.EstimatedDuration,
		Date:                date,
		StartTime:           startTime,
		TravelTimeMinutes:   r.TravelTime,
		Pickup:              r.Pickup,
		Dropoff:             r.Dropoff,
		PromoCode:           r.PromoCode,
		IsFirstTimeCustomer: r.IsFirstTimeCustomer,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		Quote: resp.Quote,
		Slot:  resp.Slot,
	}
}
