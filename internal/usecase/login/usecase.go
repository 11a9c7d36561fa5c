package login

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
	"github.com/m04kA/SMC-BikeRental/internal/integrations/rentalapi"
	"github.com/m04kA/SMC-BikeRental/internal/service/sessions"
)

// UseCase мастер входа по телефону: phone -> otp -> details -> done.
// Шаг хранится в сессии посетителя, вызовы API выполняются под блокировкой сессии.
type UseCase struct {
	sessions  SessionRunner
	client    AuthClient
	validator StructValidator
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionRunner, client AuthClient, validator StructValidator, logger Logger) *UseCase {
	return &UseCase{
		sessions:  sessions,
		client:    client,
		validator: validator,
		logger:    logger,
	}
}

// State возвращает текущее состояние мастера
func (uc *UseCase) State(ctx context.Context, sessionID string) (*Response, error) {
	var resp *Response
	err := uc.sessions.Do(ctx, sessionID, func(s *sessions.Session) error {
		resp = toResponse(s.Login())
		return nil
	})
	if err != nil {
		return nil, uc.sessionError(err)
	}
	return resp, nil
}

// SendOTP отправляет код на телефон. В шаге otp работает как повторная отправка
func (uc *UseCase) SendOTP(ctx context.Context, req *SendOTPRequest) (*Response, error) {
	req.Phone = strings.TrimSpace(req.Phone)
	if err := uc.validate(req); err != nil {
		uc.logger.Warn("Login.SendOTP: validation failed: %v", err)
		return nil, err
	}

	var resp *Response
	err := uc.sessions.Do(ctx, req.SessionID, func(s *sessions.Session) error {
		step := s.Login().Step
		if step != domain.LoginStepPhone && step != domain.LoginStepOTP {
			return fmt.Errorf("%w: step=%s", ErrWrongStep, step)
		}

		if err := uc.client.SendOTP(ctx, req.Phone); err != nil {
			uc.logger.Error("Login.SendOTP: failed to send OTP to %s: %v", req.Phone, err)
			return fmt.Errorf("%w: %v", ErrUpstream, err)
		}

		state := domain.LoginState{Step: domain.LoginStepOTP, Phone: req.Phone}
		s.SetLogin(state)
		resp = toResponse(state)
		return nil
	})
	if err != nil {
		return nil, uc.sessionError(err)
	}

	uc.logger.Info("Login.SendOTP: session=%s, OTP sent to %s", req.SessionID, req.Phone)
	return resp, nil
}

// VerifyOTP подтверждает код. Новый пользователь с временным email переходит к заполнению профиля
func (uc *UseCase) VerifyOTP(ctx context.Context, req *VerifyOTPRequest) (*Response, error) {
	req.OTP = strings.TrimSpace(req.OTP)
	if err := uc.validate(req); err != nil {
		uc.logger.Warn("Login.VerifyOTP: validation failed: %v", err)
		return nil, err
	}

	var resp *Response
	err := uc.sessions.Do(ctx, req.SessionID, func(s *sessions.Session) error {
		current := s.Login()
		if current.Step != domain.LoginStepOTP {
			return fmt.Errorf("%w: step=%s", ErrWrongStep, current.Step)
		}

		result, err := uc.client.VerifyOTP(ctx, current.Phone, req.OTP)
		if err != nil {
			if rentalapi.IsClientError(err) {
				return fmt.Errorf("%w: %v", ErrVerificationFailed, err)
			}
			uc.logger.Error("Login.VerifyOTP: failed to verify OTP for %s: %v", current.Phone, err)
			return fmt.Errorf("%w: %v", ErrUpstream, err)
		}
		if result.Token == "" || result.User == nil {
			return fmt.Errorf("%w: token or user missing in response", ErrVerificationFailed)
		}

		next := domain.LoginStepDone
		if domain.NeedsProfile(result.User) {
			next = domain.LoginStepDetails
		}

		state := domain.LoginState{Step: next, Phone: current.Phone, User: result.User}
		s.SetLogin(state)
		resp = toResponse(state)
		resp.Token = result.Token
		return nil
	})
	if err != nil {
		return nil, uc.sessionError(err)
	}

	uc.logger.Info("Login.VerifyOTP: session=%s, phone=%s verified, next step=%s", req.SessionID, resp.Phone, resp.Step)
	return resp, nil
}

// CompleteProfile сохраняет имя и email нового пользователя
func (uc *UseCase) CompleteProfile(ctx context.Context, req *ProfileRequest) (*Response, error) {
	normalizeProfile(req)
	if err := uc.validate(req); err != nil {
		uc.logger.Warn("Login.CompleteProfile: validation failed: %v", err)
		return nil, err
	}

	var resp *Response
	err := uc.sessions.Do(ctx, req.SessionID, func(s *sessions.Session) error {
		current := s.Login()
		if current.Step != domain.LoginStepDetails {
			return fmt.Errorf("%w: step=%s", ErrWrongStep, current.Step)
		}

		update := rentalapi.UserUpdate{
			Name:  req.FirstName + " " + req.LastName,
			Email: req.Email,
		}
		updated, err := uc.client.UpdateUserByPhone(ctx, current.Phone, update)
		if err != nil {
			if errors.Is(err, rentalapi.ErrBadRequest) {
				return &ValidationError{Fields: map[string]string{"email": err.Error()}}
			}
			uc.logger.Error("Login.CompleteProfile: failed to update user %s: %v", current.Phone, err)
			return fmt.Errorf("%w: %v", ErrUpstream, err)
		}

		user := mergeUser(current.User, updated, update)
		state := domain.LoginState{Step: domain.LoginStepDone, Phone: current.Phone, User: user}
		s.SetLogin(state)
		resp = toResponse(state)
		return nil
	})
	if err != nil {
		return nil, uc.sessionError(err)
	}

	uc.logger.Info("Login.CompleteProfile: session=%s, profile completed for %s", req.SessionID, resp.Phone)
	return resp, nil
}

// Reset возвращает мастер к вводу телефона (закрытие окна входа, выход)
func (uc *UseCase) Reset(ctx context.Context, sessionID string) (*Response, error) {
	var resp *Response
	err := uc.sessions.Do(ctx, sessionID, func(s *sessions.Session) error {
		state := domain.DefaultLoginState()
		s.SetLogin(state)
		resp = toResponse(state)
		return nil
	})
	if err != nil {
		return nil, uc.sessionError(err)
	}
	return resp, nil
}

// mergeUser берет пользователя из ответа API, а если ответ пустой, обновляет известного локально
func mergeUser(known, updated *domain.User, update rentalapi.UserUpdate) *domain.User {
	if updated != nil && updated.Phone != "" {
		return updated
	}
	user := domain.User{}
	if known != nil {
		user = *known
	}
	user.Name = update.Name
	user.Email = update.Email
	return &user
}

// sessionError пропускает ошибки use case как есть, остальное считает внутренней ошибкой
func (uc *UseCase) sessionError(err error) error {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrWrongStep),
		errors.Is(err, ErrVerificationFailed),
		errors.Is(err, ErrUpstream),
		errors.Is(err, sessions.ErrInvalidSessionID):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
