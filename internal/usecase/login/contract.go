package login

import (
	"context"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
	"github.com/m04kA/SMC-BikeRental/internal/integrations/rentalapi"
	"github.com/m04kA/SMC-BikeRental/internal/service/sessions"
)

// SessionRunner выполняет действие над сессией посетителя под ее блокировкой
type SessionRunner interface {
	Do(ctx context.Context, id string, fn func(s *sessions.Session) error) error
}

// AuthClient интерфейс методов авторизации API проката
type AuthClient interface {
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, otp string) (*domain.AuthResult, error)
	UpdateUserByPhone(ctx context.Context, phone string, update rentalapi.UserUpdate) (*domain.User, error)
}

// StructValidator интерфейс валидатора (go-playground/validator)
type StructValidator interface {
	Struct(s interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
