package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BikeRental/internal/service/sessions"
)

type sessionKey struct{}

// SessionConfig настройки cookie сессии
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Session гарантирует, что у запроса есть ID сессии.
// Если cookie нет или она некорректна, создается новая сессия и cookie выставляется в ответ.
func Session(cfg SessionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(cfg.CookieName); err == nil && sessions.IsValidID(c.Value) {
				id = c.Value
			}

			if id == "" {
				id = sessions.NewID()
			}

			// Продлеваем cookie на каждом запросе
			http.SetCookie(w, &http.Cookie{
				Name:     cfg.CookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(cfg.TTL.Seconds()),
				HttpOnly: true,
				Secure:   cfg.Secure,
				SameSite: http.SameSiteLaxMode,
			})

			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), id)))
		})
	}
}

// WithSessionID кладет ID сессии в контекст
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

// GetSessionID возвращает ID сессии из контекста или пустую строку
func GetSessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
