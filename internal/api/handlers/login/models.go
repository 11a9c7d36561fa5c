package login

import (
	"time"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
	"github.com/m04kA/SMC-BikeRental/internal/usecase/login"
)

// TokenCookieConfig параметры cookie с токеном API проката
type TokenCookieConfig struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// LoginResponse состояние мастера входа
type LoginResponse struct {
	Step          string        `json:"step"`
	Phone         string        `json:"phone,omitempty"`
	User          *UserResponse `json:"user,omitempty"`
	Authenticated bool          `json:"authenticated"`
}

type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"isAdmin"`
}

func fromResponse(r *login.Response) LoginResponse {
	resp := LoginResponse{
		Step:          string(r.Step),
		Phone:         r.Phone,
		Authenticated: r.Step == domain.LoginStepDone && r.User != nil,
	}
	if r.User != nil {
		resp.User = &UserResponse{
			ID:      r.User.ID,
			Name:    r.User.Name,
			Email:   r.User.Email,
			Phone:   r.User.Phone,
			Role:    string(r.User.Role),
			IsAdmin: r.User.IsAdmin(),
		}
	}
	return resp
}
