package sessions

import "errors"

var (
	// ErrInvalidSessionID возвращается, когда ID сессии не является UUID
	ErrInvalidSessionID = errors.New("sessions: invalid session id")

	// ErrInternal возвращается при ошибках хранилища сессий
	ErrInternal = errors.New("sessions: internal error")
)
