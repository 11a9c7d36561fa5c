package sessions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
)

// SessionRepository интерфейс хранилища снимков сессий
type SessionRepository interface {
	Get(ctx context.Context, id string) (*domain.SessionSnapshot, error)
	Save(ctx context.Context, snapshot *domain.SessionSnapshot) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// MetricsCollector интерфейс для метрик активных сессий
type MetricsCollector interface {
	SetActiveSessions(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
