package sessions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
	sessionRepo "github.com/m04kA/SMC-BikeRental/internal/infra/storage/session"
)

// Registry держит сессии в памяти и сохраняет их снимки в хранилище.
// Сессия, вытесненная из памяти, восстанавливается из хранилища при следующем запросе.
type Registry struct {
	repo         SessionRepository
	timeProvider TimeProvider
	loc          *time.Location
	ttl          time.Duration
	metrics      MetricsCollector
	logger       Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry создает новый реестр сессий
func NewRegistry(
	repo SessionRepository,
	timeProvider TimeProvider,
	loc *time.Location,
	ttl time.Duration,
	metrics MetricsCollector,
	logger Logger,
) *Registry {
	if ttl <= 0 {
		ttl = domain.DefaultSessionTTL
	}
	return &Registry{
		repo:         repo,
		timeProvider: timeProvider,
		loc:          loc,
		ttl:          ttl,
		metrics:      metrics,
		logger:       logger,
		sessions:     make(map[string]*Session),
	}
}

// NewID генерирует ID новой сессии
func NewID() string {
	return uuid.NewString()
}

// IsValidID проверяет формат ID сессии
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Do выполняет fn над сессией под ее блокировкой.
// Если fn изменила состояние, снимок сохраняется один раз после выполнения.
func (r *Registry) Do(ctx context.Context, id string, fn func(s *Session) error) error {
	if !IsValidID(id) {
		return ErrInvalidSessionID
	}

	s, err := r.acquire(ctx, id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := r.timeProvider.Now()
	s.touch(now)

	// Сохраненное или долго открытое окно могло устареть
	if w, moved := s.Engine.RollForward(); moved {
		r.logger.Info("Sessions: session id=%s, elapsed pickup moved to %s", id, w.PickupAt.UTC().Format(domain.ISOFormat))
	}

	fnErr := fn(s)

	if s.dirty.Swap(false) {
		if err := r.repo.Save(ctx, s.Snapshot(now)); err != nil {
			// Состояние в памяти уже обновлено, поэтому запрос не проваливаем
			r.logger.Error("Sessions: failed to save session id=%s: %v", id, err)
		}
	}

	return fnErr
}

// acquire находит сессию в памяти, восстанавливает из хранилища или создает новую
func (r *Registry) acquire(ctx context.Context, id string) (*Session, error) {
	// touch под r.mu: EvictIdle не вытеснит сессию между поиском и Do
	r.mu.RLock()
	s, ok := r.sessions[id]
	if ok {
		s.touch(r.timeProvider.Now())
	}
	r.mu.RUnlock()
	if ok {
		return s, nil
	}

	snap, err := r.repo.Get(ctx, id)
	switch {
	case err == nil:
		r.logger.Info("Sessions: restored session id=%s", id)
	case errors.Is(err, sessionRepo.ErrSessionNotFound):
		snap = &domain.SessionSnapshot{
			ID:      id,
			Search:  domain.DefaultSearchState(r.timeProvider.Now().In(r.loc)),
			Filters: domain.DefaultFilterState(),
			Login:   domain.DefaultLoginState(),
		}
	default:
		r.logger.Error("Sessions: failed to load session id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
	}

	created := newSession(snap, r.timeProvider, r.loc)

	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.timeProvider.Now()
	// Параллельный запрос мог успеть создать ту же сессию
	if existing, ok := r.sessions[id]; ok {
		existing.touch(now)
		return existing, nil
	}
	created.touch(now)
	r.sessions[id] = created
	r.reportActive()
	return created, nil
}

// Forget удаляет сессию из памяти и из хранилища
func (r *Registry) Forget(ctx context.Context, id string) error {
	r.mu.Lock()
	delete(r.sessions, id)
	r.reportActive()
	r.mu.Unlock()

	if err := r.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: failed to delete session: %v", ErrInternal, err)
	}
	return nil
}

// EvictIdle вытесняет из памяти сессии без активности дольше ttl
// и удаляет их просроченные снимки из хранилища
func (r *Registry) EvictIdle(ctx context.Context) (evicted int, expired int64, err error) {
	cutoff := r.timeProvider.Now().Add(-r.ttl)

	r.mu.Lock()
	for id, s := range r.sessions {
		if s.idleSince(cutoff) {
			delete(r.sessions, id)
			evicted++
		}
	}
	r.reportActive()
	r.mu.Unlock()

	expired, err = r.repo.DeleteExpired(ctx, cutoff)
	if err != nil {
		return evicted, 0, fmt.Errorf("%w: failed to delete expired sessions: %v", ErrInternal, err)
	}
	return evicted, expired, nil
}

// Active возвращает количество сессий в памяти
func (r *Registry) Active() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// reportActive вызывается под r.mu
func (r *Registry) reportActive() {
	if r.metrics != nil {
		r.metrics.SetActiveSessions(len(r.sessions))
	}
}
