package filters

import (
	"context"

	"github.com/m04kA/SMC-BikeRental/internal/service/sessions"
	"github.com/m04kA/SMC-BikeRental/internal/usecase/change_package"
)

type SessionRunner interface {
	Do(ctx context.Context, id string, fn func(s *sessions.Session) error) error
}

type ChangePackageUseCase interface {
	Execute(ctx context.Context, req *change_package.Request) (*change_package.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
