package sessions

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
	"github.com/m04kA/SMC-BikeRental/internal/service/filterstate"
	"github.com/m04kA/SMC-BikeRental/internal/service/reconciler"
	"github.com/m04kA/SMC-BikeRental/internal/service/searchstate"
)

// Session состояние одного посетителя: форма поиска, фильтры и мастер входа.
// Все поля используются только внутри Registry.Do под mu.
type Session struct {
	ID      string
	Search  *searchstate.Store
	Filters *filterstate.Store
	Engine  *reconciler.Engine

	login    domain.LoginState
	mu       sync.Mutex
	dirty    atomic.Bool
	lastSeen atomic.Int64
}

func newSession(snap *domain.SessionSnapshot, clock reconciler.TimeProvider, loc *time.Location) *Session {
	search := searchstate.Restore(snap.Search)
	s := &Session{
		ID:      snap.ID,
		Search:  search,
		Filters: filterstate.Restore(snap.Filters),
		Engine:  reconciler.NewEngine(search, clock, loc),
		login:   snap.Login,
	}
	if s.login.Step == "" {
		s.login = domain.DefaultLoginState()
	}

	// Любое изменение состояния помечает сессию для сохранения
	s.Search.Subscribe(func(domain.SearchState) { s.dirty.Store(true) })
	s.Filters.Subscribe(func(domain.FilterState) { s.dirty.Store(true) })
	return s
}

// Login возвращает состояние мастера входа
func (s *Session) Login() domain.LoginState {
	return s.login
}

// SetLogin заменяет состояние мастера входа
func (s *Session) SetLogin(state domain.LoginState) {
	s.login = state
	s.dirty.Store(true)
}

// Snapshot собирает сохраняемый снимок сессии
func (s *Session) Snapshot(now time.Time) *domain.SessionSnapshot {
	return &domain.SessionSnapshot{
		ID:        s.ID,
		Search:    s.Search.Snapshot(),
		Filters:   s.Filters.Snapshot(),
		Login:     s.login,
		UpdatedAt: now,
	}
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

func (s *Session) idleSince(before time.Time) bool {
	return s.lastSeen.Load() < before.UnixNano()
}
