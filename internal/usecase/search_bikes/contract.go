package search_bikes

import (
	"context"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
)

// RentalClient интерфейс клиента API проката
type RentalClient interface {
	SearchBikes(ctx context.Context, search domain.BikeSearch) ([]domain.Bike, error)
}

// MetricsCollector интерфейс для метрик выдачи. Может быть nil
type MetricsCollector interface {
	ObserveSearchResults(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
