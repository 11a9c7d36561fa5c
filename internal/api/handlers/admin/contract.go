package admin

import (
	"context"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
)

// RentalClient методы записи справочников API проката
type RentalClient interface {
	ListBikes(ctx context.Context) ([]domain.Bike, error)
	CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	UpdateBike(ctx context.Context, id int64, bike *domain.Bike) (*domain.Bike, error)
	DeleteBike(ctx context.Context, id int64) error

	CreateCity(ctx context.Context, city *domain.City) (*domain.City, error)
	UpdateCity(ctx context.Context, id int64, city *domain.City) (*domain.City, error)
	DeleteCity(ctx context.Context, id int64) error

	ListAreas(ctx context.Context) ([]domain.Area, error)
	CreateArea(ctx context.Context, area *domain.Area) (*domain.Area, error)
	DeleteArea(ctx context.Context, id int64) error

	CreateOffer(ctx context.Context, offer *domain.Offer) (*domain.Offer, error)
	UpdateOffer(ctx context.Context, id int64, offer *domain.Offer) (*domain.Offer, error)
	DeleteOffer(ctx context.Context, id int64) error
}

// StructValidator интерфейс валидатора (go-playground/validator)
type StructValidator interface {
	Struct(s interface{}) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
