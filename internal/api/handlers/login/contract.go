package login

import (
	"context"

	"github.com/m04kA/SMC-BikeRental/internal/usecase/login"
)

type UseCase interface {
	State(ctx context.Context, sessionID string) (*login.Response, error)
	SendOTP(ctx context.Context, req *login.SendOTPRequest) (*login.Response, error)
	VerifyOTP(ctx context.Context, req *login.VerifyOTPRequest) (*login.Response, error)
	CompleteProfile(ctx context.Context, req *login.ProfileRequest) (*login.Response, error)
	Reset(ctx context.Context, sessionID string) (*login.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
