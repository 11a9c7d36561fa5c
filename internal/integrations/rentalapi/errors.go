package rentalapi

import "errors"

var (
	// ErrNotFound возвращается при ответе 404
	ErrNotFound = errors.New("rentalapi client: resource not found")

	// ErrBadRequest возвращается, когда API отклонило данные запроса (400, 422)
	ErrBadRequest = errors.New("rentalapi client: request rejected")

	// ErrUnavailable возвращается при сетевой ошибке или ответе 5xx
	ErrUnavailable = errors.New("rentalapi client: service unavailable")

	// ErrInvalidResponse возвращается при неожиданном статусе или некорректном теле ответа
	ErrInvalidResponse = errors.New("rentalapi client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("rentalapi client: internal error")
)
