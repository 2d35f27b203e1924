package get_quote

import "errors"

var (
	// ErrNoItems возвращается, если в заказе нет вещей
	ErrNoItems = errors.New("get_quote: no items provided")

	// ErrServiceTypeNotFound возвращается для неизвестного тарифа
	ErrServiceTypeNotFound = errors.New("get_quote: service type not found")

	// ErrSlotNotAvailable возвращается, когда выбранный слот не предлагается на дату
	ErrSlotNotAvailable = errors.New("get_quote: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_quote: internal error")
)
