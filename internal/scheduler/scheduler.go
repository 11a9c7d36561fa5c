package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = time.Minute

// SessionEvictor вытесняет простаивающие сессии из памяти и удаляет просроченные снимки
type SessionEvictor interface {
	EvictIdle(ctx context.Context) (evicted int, expired int64, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler запускает фоновые задачи по расписанию cron
type Scheduler struct {
	cron     *cron.Cron
	sessions SessionEvictor
	logger   Logger
}

// NewScheduler создает планировщик и регистрирует очистку сессий.
// schedule - выражение cron ("*/10 * * * *" или "@every 10m")
func NewScheduler(sessions SessionEvictor, schedule string, loc *time.Location, logger Logger) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}

	s := &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		sessions: sessions,
		logger:   logger,
	}

	if _, err := s.cron.AddFunc(schedule, s.SweepSessions); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	return s, nil
}

// SweepSessions одна итерация очистки сессий
func (s *Scheduler) SweepSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	evicted, expired, err := s.sessions.EvictIdle(ctx)
	if err != nil {
		s.logger.Error("Scheduler: session sweep failed (evicted %d): %v", evicted, err)
		return
	}
	if evicted > 0 || expired > 0 {
		s.logger.Info("Scheduler: evicted %d idle sessions, deleted %d expired snapshots", evicted, expired)
	}
}

// Start запускает планировщик
func (s *Scheduler) Start() {
	s.logger.Info("Starting cron scheduler...")
	s.cron.Start()
}

// Stop останавливает планировщик и ждет завершения запущенных задач
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler stopped")
}

// Jobs возвращает количество зарегистрированных задач
func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}
