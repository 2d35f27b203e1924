package availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)

// Сообщения для результатов-значений (конфликты и отказы не являются ошибками)
const (
	msgSlotAlreadyBooked = "slot is already booked"
	msgSlotNotOffered    = "no slot starts at this time"
	msgSlotTooSoon       = "slot starts too soon to be booked"
	msgDateUnavailable   = "date is no longer available"
)
