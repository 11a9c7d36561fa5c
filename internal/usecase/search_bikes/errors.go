package search_bikes

import "errors"

var (
	// ErrCityNotSelected возвращается, когда в форме поиска не выбран город
	ErrCityNotSelected = errors.New("city is not selected")

	// ErrInvalidWindow возвращается, когда возврат раньше выдачи
	ErrInvalidWindow = errors.New("dropoff is before pickup")

	// ErrUpstream возвращается, когда API проката не смогло выполнить поиск
	ErrUpstream = errors.New("failed to load bikes")
)
