package catalog

import (
	"context"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
)

// RentalClient методы чтения справочников API проката
type RentalClient interface {
	ListCities(ctx context.Context) ([]domain.City, error)
	AreasByCity(ctx context.Context, city string) ([]domain.Area, error)
	ListOffers(ctx context.Context) ([]domain.Offer, error)
	GetOffer(ctx context.Context, id int64) (*domain.Offer, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	GetBike(ctx context.Context, id int64) (*domain.Bike, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
