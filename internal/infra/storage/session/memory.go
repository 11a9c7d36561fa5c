package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
)

// MemoryRepository хранит снимки сессий в памяти процесса.
// Используется для одиночного инстанса без БД и в тестах.
type MemoryRepository struct {
	mu        sync.RWMutex
	snapshots map[string]domain.SessionSnapshot
}

// NewMemoryRepository создает пустое хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{snapshots: make(map[string]domain.SessionSnapshot)}
}

// Get возвращает копию снимка
func (r *MemoryRepository) Get(_ context.Context, id string) (*domain.SessionSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap, ok := r.snapshots[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	snap.Filters = snap.Filters.Clone()
	return &snap, nil
}

// Save создает или заменяет снимок
func (r *MemoryRepository) Save(_ context.Context, snap *domain.SessionSnapshot) error {
	stored := *snap
	stored.Filters = snap.Filters.Clone()

	r.mu.Lock()
	r.snapshots[snap.ID] = stored
	r.mu.Unlock()
	return nil
}

// Delete удаляет снимок, отсутствие снимка ошибкой не считается
func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	delete(r.snapshots, id)
	r.mu.Unlock()
	return nil
}

// DeleteExpired удаляет снимки, обновленные раньше before
func (r *MemoryRepository) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for id, snap := range r.snapshots {
		if snap.UpdatedAt.Before(before) {
			delete(r.snapshots, id)
			deleted++
		}
	}
	return deleted, nil
}
