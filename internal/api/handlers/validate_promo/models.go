package validate_promo

import "github.com/m04kA/SMC-QuoteService/internal/domain"

// ValidatePromoRequest HTTP request model
type ValidatePromoRequest struct {
	Code                string  `json:"code" validate:"required"`
	OrderValue          float64 `json:"orderValue" validate:"gte=0"` // фунты
	ServiceType         string  `json:"serviceType"`
	Distance            float64 `json:"distance" validate:"gte=0"`
	IsFirstTimeCustomer bool    `json:"isFirstTimeCustomer"`
}

// PromoContext условия бронирования для проверки промокода
func (r *ValidatePromoRequest) PromoContext() domain.PromoContext {
	return domain.PromoContext{
		ServiceType:         r.ServiceType,
		Distance:            r.Distance,
		IsFirstTimeCustomer: r.IsFirstTimeCustomer,
	}
}
