package recommendation

import "errors"

var (
	// ErrNoItems возвращается, если не передано ни одной вещи
	ErrNoItems = errors.New("recommendation: no items provided")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("recommendation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("recommendation: internal error")
)
