package rentalapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
)

// SendOTP запрашивает отправку кода на телефон
func (c *Client) SendOTP(ctx context.Context, phone string) error {
	return c.send(ctx, "send_otp", http.MethodPost, "/auth/send-otp", sendOTPRequest{Phone: phone}, nil)
}

// VerifyOTP проверяет код. Наличие token и user в ответе проверяет вызывающий
func (c *Client) VerifyOTP(ctx context.Context, phone, otp string) (*domain.AuthResult, error) {
	var result domain.AuthResult
	err := c.send(ctx, "verify_otp", http.MethodPost, "/auth/verify-otp", verifyOTPRequest{Phone: phone, OTP: otp}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateUserByPhone обновляет имя и email пользователя
func (c *Client) UpdateUserByPhone(ctx context.Context, phone string, update UserUpdate) (*domain.User, error) {
	var user domain.User
	err := c.send(ctx, "update_user", http.MethodPatch, "/user/phone/"+url.PathEscape(phone), update, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
