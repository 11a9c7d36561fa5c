package search_state

import (
	"context"

	"github.com/m04kA/SMC-BikeRental/internal/service/sessions"
)

type SessionRunner interface {
	Do(ctx context.Context, id string, fn func(s *sessions.Session) error) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
