package create_booking

import "errors"

var (
	// ErrNoItems возвращается, если в заказе нет вещей
	ErrNoItems = errors.New("create_booking: no items provided")

	// ErrServiceTypeNotFound возвращается для неизвестного тарифа
	ErrServiceTypeNotFound = errors.New("create_booking: service type not found")

	// ErrSlotNotAvailable возвращается, когда слот нельзя забронировать (занят, не предлагается, дата закрыта)
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrPromoUnavailable возвращается, когда промокод исчерпан между расчетом и подтверждением
	ErrPromoUnavailable = errors.New("create_booking: promo code is no longer available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// Исходы бронирования для метрик
const (
	outcomeBooked   = "booked"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)
