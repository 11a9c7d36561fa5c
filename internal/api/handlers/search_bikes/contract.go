package search_bikes

import (
	"context"

	"github.com/m04kA/SMC-BikeRental/internal/service/sessions"
	"github.com/m04kA/SMC-BikeRental/internal/usecase/search_bikes"
)

type SessionRunner interface {
	Do(ctx context.Context, id string, fn func(s *sessions.Session) error) error
}

type UseCase interface {
	Execute(ctx context.Context, req *search_bikes.Request) (*search_bikes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
