package reconciler

import (
	"time"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
)

// SearchStore хранилище состояния поиска, которое согласовывает engine
type SearchStore interface {
	Snapshot() domain.SearchState
	UpdatePickupDateTime(ts time.Time)
	UpdateDropoffDateTime(ts time.Time)
	UpdateDuration(days, hours int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
