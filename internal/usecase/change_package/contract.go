package change_package

import (
	"context"

	"github.com/m04kA/SMC-BikeRental/internal/service/sessions"
	"github.com/m04kA/SMC-BikeRental/internal/usecase/search_bikes"
)

// SessionRunner выполняет действие над сессией посетителя под ее блокировкой
type SessionRunner interface {
	Do(ctx context.Context, id string, fn func(s *sessions.Session) error) error
}

// BikeSearcher интерфейс use case поиска байков
type BikeSearcher interface {
	Execute(ctx context.Context, req *search_bikes.Request) (*search_bikes.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
