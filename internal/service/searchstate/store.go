package searchstate

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
)

// Listener получает полный снимок состояния после каждого изменения
type Listener func(state domain.SearchState)

// Store хранит состояние формы поиска одной сессии.
// Каждое обновление заменяет снимок целиком (копия предыдущего + одно поле),
// валидация здесь не выполняется - за согласованность отвечает reconciler.
type Store struct {
	mu        sync.RWMutex
	state     domain.SearchState
	listeners map[int]Listener
	nextID    int
}

// New создает хранилище с окном по умолчанию относительно now
func New(now time.Time) *Store {
	return Restore(domain.DefaultSearchState(now))
}

// Restore создает хранилище из сохраненного снимка
func Restore(state domain.SearchState) *Store {
	return &Store{
		state:     state,
		listeners: make(map[int]Listener),
	}
}

// Snapshot возвращает текущий снимок состояния
func (s *Store) Snapshot() domain.SearchState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe регистрирует подписчика; возвращает функцию отписки
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// UpdateCity заменяет выбранный город
func (s *Store) UpdateCity(city string) {
	s.replace(func(st *domain.SearchState) { st.City = city })
}

// UpdatePickupDateTime заменяет время получения
func (s *Store) UpdatePickupDateTime(ts time.Time) {
	s.replace(func(st *domain.SearchState) { st.PickupAt = ts })
}

// UpdateDropoffDateTime заменяет время возврата
func (s *Store) UpdateDropoffDateTime(ts time.Time) {
	s.replace(func(st *domain.SearchState) { st.DropoffAt = ts })
}

// UpdateDuration заменяет длительность аренды
func (s *Store) UpdateDuration(days, hours int) {
	s.replace(func(st *domain.SearchState) { st.Duration = domain.Duration{Days: days, Hours: hours} })
}

func (s *Store) replace(mutate func(st *domain.SearchState)) {
	s.mu.Lock()
	next := s.state
	mutate(&next)
	s.state = next

	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	// Уведомляем вне блокировки, чтобы подписчик мог читать Snapshot
	for _, l := range listeners {
		l(next)
	}
}
