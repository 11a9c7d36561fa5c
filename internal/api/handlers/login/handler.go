package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BikeRental/internal/api/handlers"
	"github.com/m04kA/SMC-BikeRental/internal/api/middleware"
	"github.com/m04kA/SMC-BikeRental/internal/service/sessions"
	"github.com/m04kA/SMC-BikeRental/internal/usecase/login"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgWrongStep          = "this action is not available at the current login step"
	msgVerificationFailed = "invalid or expired OTP"
	msgAuthUnavailable    = "authentication service is unavailable, please try again"
	msgInvalidSession     = "invalid session"
)

type Handler struct {
	useCase UseCase
	cookie  TokenCookieConfig
	logger  Logger
}

func NewHandler(useCase UseCase, cookie TokenCookieConfig, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		cookie:  cookie,
		logger:  logger,
	}
}

// State GET /api/v1/auth
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	resp, err := h.useCase.State(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		h.respondError(w, "GET /auth", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, fromResponse(resp))
}

// SendOTP POST /api/v1/auth/send-otp
func (h *Handler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req login.SendOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/send-otp - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.SessionID = middleware.GetSessionID(r.Context())

	resp, err := h.useCase.SendOTP(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /auth/send-otp", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, fromResponse(resp))
}

// VerifyOTP POST /api/v1/auth/verify-otp
// При успехе токен API проката кладется в HttpOnly cookie
func (h *Handler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req login.VerifyOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/verify-otp - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.SessionID = middleware.GetSessionID(r.Context())

	resp, err := h.useCase.VerifyOTP(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /auth/verify-otp", err)
		return
	}

	h.setToken(w, resp.Token, int(h.cookie.MaxAge.Seconds()))
	handlers.RespondJSON(w, http.StatusOK, fromResponse(resp))
}

// CompleteProfile POST /api/v1/auth/profile
func (h *Handler) CompleteProfile(w http.ResponseWriter, r *http.Request) {
	var req login.ProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.SessionID = middleware.GetSessionID(r.Context())

	resp, err := h.useCase.CompleteProfile(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /auth/profile", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, fromResponse(resp))
}

// Logout POST /api/v1/auth/logout
// Сбрасывает мастер входа и удаляет cookie с токеном
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	resp, err := h.useCase.Reset(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		h.respondError(w, "POST /auth/logout", err)
		return
	}

	h.setToken(w, "", -1)
	handlers.RespondJSON(w, http.StatusOK, fromResponse(resp))
}

func (h *Handler) setToken(w http.ResponseWriter, token string, maxAge int) {
	if token == "" && maxAge > 0 {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	var validationErr *login.ValidationError
	switch {
	case errors.As(err, &validationErr):
		handlers.RespondValidationError(w, validationErr.Fields)
	case errors.Is(err, login.ErrWrongStep):
		h.logger.Warn("%s - %v", route, err)
		handlers.RespondError(w, http.StatusConflict, msgWrongStep)
	case errors.Is(err, login.ErrVerificationFailed):
		h.logger.Warn("%s - %v", route, err)
		handlers.RespondError(w, http.StatusUnauthorized, msgVerificationFailed)
	case errors.Is(err, login.ErrUpstream):
		h.logger.Error("%s - %v", route, err)
		handlers.RespondError(w, http.StatusBadGateway, msgAuthUnavailable)
	case errors.Is(err, sessions.ErrInvalidSessionID):
		handlers.RespondBadRequest(w, msgInvalidSession)
	default:
		h.logger.Error("%s - Unexpected error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
