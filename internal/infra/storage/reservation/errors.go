package reservation

import "errors"

var (
	// ErrSlotAlreadyReserved возвращается, когда слот на эту дату уже занят
	ErrSlotAlreadyReserved = errors.New("reservation.repository: slot already reserved")

	// ErrInvalidSlot возвращается при некорректном времени начала слота
	ErrInvalidSlot = errors.New("reservation.repository: invalid slot start time")
)
