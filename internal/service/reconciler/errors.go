package reconciler

import "errors"

var (
	// ErrDateDisabled возвращается, когда дата недоступна для выбора в календаре
	ErrDateDisabled = errors.New("reconciler: date is not selectable")

	// ErrInvalidHour возвращается, когда час вне диапазона 0-23
	ErrInvalidHour = errors.New("reconciler: hour must be between 0 and 23")

	// ErrSlotUnavailable возвращается, когда час уже прошел или раньше времени получения
	ErrSlotUnavailable = errors.New("reconciler: time slot is not selectable")

	// ErrDropoffBeforePickup возвращается, когда изменение сделало бы возврат раньше получения
	ErrDropoffBeforePickup = errors.New("reconciler: dropoff is before pickup")

	// ErrInvalidSide возвращается при неизвестной стороне окна аренды
	ErrInvalidSide = errors.New("reconciler: side must be pickup or dropoff")
)
