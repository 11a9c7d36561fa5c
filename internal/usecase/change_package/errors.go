package change_package

import "errors"

var (
	// ErrInvalidPackage возвращается при неизвестном пакете аренды
	ErrInvalidPackage = errors.New("invalid rental package")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
