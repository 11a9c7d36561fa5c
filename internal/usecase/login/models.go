package login

import "github.com/m04kA/SMC-BikeRental/internal/domain"

// SendOTPRequest шаг 1: телефон
type SendOTPRequest struct {
	SessionID string `json:"-"`
	Phone     string `json:"phone" validate:"required,bdphone"`
}

// VerifyOTPRequest шаг 2: код из сообщения
type VerifyOTPRequest struct {
	SessionID string `json:"-"`
	OTP       string `json:"otp" validate:"required,len=4,numeric"`
}

// ProfileRequest шаг 3: данные нового пользователя
type ProfileRequest struct {
	SessionID string `json:"-"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email"`
}

// Response состояние мастера входа после действия
type Response struct {
	Step  domain.LoginStep
	Phone string
	User  *domain.User
	Token string // Заполняется только после подтверждения кода
}

func toResponse(state domain.LoginState) *Response {
	return &Response{
		Step:  state.Step,
		Phone: state.Phone,
		User:  state.User,
	}
}
