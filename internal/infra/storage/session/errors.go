package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда снимок сессии не найден
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("session.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("session.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("session.repository: failed to scan row")

	// ErrEncodeUser возвращается, когда пользователя мастера входа не удалось сериализовать
	ErrEncodeUser = errors.New("session.repository: failed to encode login user")
)
