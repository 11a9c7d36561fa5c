package filterstate

import "errors"

var (
	// ErrUnknownCategory возвращается для неизвестной группы фильтров
	ErrUnknownCategory = errors.New("filterstate: unknown filter category")

	// ErrEmptyValue возвращается при пустом значении фильтра
	ErrEmptyValue = errors.New("filterstate: empty filter value")
)
