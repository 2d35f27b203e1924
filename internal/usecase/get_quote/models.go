package get_quote

import (
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// Request модель запроса на расчет стоимости
type Request struct {
	Items               []domain.BookingItem
	ServiceType         string
	Distance            float64 // км, от сервиса маршрутов
	EstimatedDuration   float64 // часы, от сервиса маршрутов
	Date                time.Time
	StartTime           types.TimeString // пусто, если слот еще не выбран
	TravelTimeMinutes   int
	Pickup              domain.PropertyAccessDetails
	Dropoff             domain.PropertyAccessDetails
	PromoCode           string
	IsFirstTimeCustomer bool
}

// Response модель ответа с расчетом
type Response struct {
	Quote *domain.PricingBreakdown
	Slot  *domain.EnhancedTimeSlot // nil, если слот не выбран
}

// pricingInput собирает вход движка расчета
func (r *Request) pricingInput(slot *domain.EnhancedTimeSlot) *domain.PricingInput {
	return &domain.PricingInput{
		Items:               r.Items,
		ServiceType:         r.ServiceType,
		Distance:            r.Distance,
		EstimatedDuration:   r.EstimatedDuration,
		Date:                r.Date,
		Slot:                slot,
		Pickup:              r.Pickup,
		Dropoff:             r.Dropoff,
		PromoCode:           r.PromoCode,
		IsFirstTimeCustomer: r.IsFirstTimeCustomer,
	}
}
