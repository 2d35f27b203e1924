package pricing

import "errors"

var (
	// ErrNoItems возвращается, если в расчете нет ни одной вещи
	ErrNoItems = errors.New("pricing: no items provided")

	// ErrInvalidServiceType возвращается, если тариф не найден в реестре
	ErrInvalidServiceType = errors.New("pricing: invalid service type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("pricing: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("pricing: internal error")
)

// Причины отказа в промокоде
const (
	msgPromoNotFound        = "Promo code not found"
	msgPromoExpired         = "Promo code has expired"
	msgPromoExhausted       = "Promo code usage limit has been reached"
	msgPromoFirstTimeOnly   = "Promo code is only eligible for first-time customers"
	msgPromoServiceType     = "Promo code is not eligible for the selected service"
	msgPromoMinOrderFmt     = "Minimum order value of %s required for this code"
	msgPromoMinDistanceFmt  = "Promo code is only eligible for moves of at least %.0f km"
	msgPromoNothingToReduce = "Promo code gives no discount on this order"
)
