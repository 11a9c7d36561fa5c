package filterstate

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
)

// Listener получает полный снимок фильтров после каждого изменения
type Listener func(state domain.FilterState)

// Store хранит выбор пользователя в панели фильтров
type Store struct {
	mu        sync.RWMutex
	state     domain.FilterState
	listeners map[int]Listener
	nextID    int
}

// New создает хранилище с пустыми фильтрами и суточным пакетом
func New() *Store {
	return Restore(domain.DefaultFilterState())
}

// Restore создает хранилище из сохраненного снимка
func Restore(state domain.FilterState) *Store {
	if !state.Package.IsValid() {
		state.Package = domain.DefaultPackage
	}
	return &Store{
		state:     state.Clone(),
		listeners: make(map[int]Listener),
	}
}

// Snapshot возвращает копию текущих фильтров
func (s *Store) Snapshot() domain.FilterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
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

// SetPackage заменяет пакет аренды (одиночный выбор)
func (s *Store) SetPackage(p domain.PackageSelector) error {
	if !p.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownPackage, p)
	}
	s.replace(func(st *domain.FilterState) { st.Package = p })
	return nil
}

// Toggle добавляет значение в список категории, если его нет, и удаляет, если есть.
// Для duration выполняется прямая замена пакета.
func (s *Store) Toggle(category domain.FilterCategory, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return ErrEmptyValue
	}

	if category == domain.CategoryDuration {
		p, err := domain.ParsePackage(value)
		if err != nil {
			return err
		}
		return s.SetPackage(p)
	}

	if !category.IsList() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	s.replace(func(st *domain.FilterState) {
		values := toggle(st.Values(category), value)
		switch category {
		case domain.CategoryTransmission:
			st.Transmission = values
		case domain.CategoryBranch:
			st.Branch = values
		case domain.CategoryBrand:
			st.Brand = values
		}
	})
	return nil
}

// toggle возвращает новый срез, сохраняя порядок вставки
func toggle(values []string, value string) []string {
	if i := slices.Index(values, value); i >= 0 {
		return slices.Delete(slices.Clone(values), i, i+1)
	}
	return append(slices.Clone(values), value)
}

func (s *Store) replace(mutate func(st *domain.FilterState)) {
	s.mu.Lock()
	next := s.state.Clone()
	mutate(&next)
	s.state = next

	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	snapshot := next.Clone()
	s.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}
