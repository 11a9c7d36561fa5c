package search_bikes

import (
	"time"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
	"github.com/m04kA/SMC-BikeRental/internal/usecase/search_bikes"
)

// SearchResponse выдача байков по форме поиска и фильтрам сессии
type SearchResponse struct {
	City      string             `json:"city"`
	PickupAt  string             `json:"pickupAt"`
	DropoffAt string             `json:"dropoffAt"`
	Duration  domain.Duration    `json:"duration"`
	Package   string             `json:"package"`
	Found     int                `json:"found"` // Моделей до фильтров
	Count     int                `json:"count"`
	Bikes     []BikeCardResponse `json:"bikes"`
}

// BikeCardResponse карточка модели байка
type BikeCardResponse struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Type      string            `json:"type"`
	Image     string            `json:"image"`
	Seat      int               `json:"seat"`
	Oil       string            `json:"oil"`
	Fuel      string            `json:"fuel"`
	Deposit   float64           `json:"deposit"`
	MakeYear  int               `json:"makeYear"`
	KmLimit   int               `json:"kmLimit"`
	ExtraKm   float64           `json:"extraKmPrice"`
	Locations []domain.Location `json:"locations"`
	Price     PriceResponse     `json:"price"`
	Packages  []PriceResponse   `json:"packages"`
}

type PriceResponse struct {
	Package     string  `json:"package"`
	PricePerDay float64 `json:"pricePerDay"`
	Days        int     `json:"days"`
	Total       float64 `json:"total"`
	KmIncluded  int     `json:"kmIncluded"`
}

// FromResponse переводит результат use case в ответ API
func FromResponse(r *search_bikes.Response) *SearchResponse {
	if r == nil {
		return nil
	}

	bikes := make([]BikeCardResponse, 0, len(r.Bikes))
	for _, l := range r.Bikes {
		bikes = append(bikes, fromListing(l))
	}

	return &SearchResponse{
		City:      r.City,
		PickupAt:  r.Window.PickupAt.Format(time.RFC3339),
		DropoffAt: r.Window.DropoffAt.Format(time.RFC3339),
		Duration:  r.Window.Duration,
		Package:   string(r.Package),
		Found:     r.Found,
		Count:     len(bikes),
		Bikes:     bikes,
	}
}

func fromListing(l search_bikes.Listing) BikeCardResponse {
	packages := make([]PriceResponse, 0, len(l.Packages))
	for _, p := range l.Packages {
		packages = append(packages, fromPrice(p))
	}

	return BikeCardResponse{
		ID:        l.Bike.ID,
		Name:      l.Bike.Name,
		Type:      l.Bike.Type,
		Image:     l.ImageURL,
		Seat:      l.Bike.Seat,
		Oil:       l.Bike.Oil,
		Fuel:      l.Bike.Fuel,
		Deposit:   l.Bike.Deposit,
		MakeYear:  l.Bike.MakeYear,
		KmLimit:   l.Bike.Limit,
		ExtraKm:   l.Bike.Extra,
		Locations: l.Locations,
		Price:     fromPrice(l.Price),
		Packages:  packages,
	}
}

func fromPrice(p domain.PackagePrice) PriceResponse {
	return PriceResponse{
		Package:     string(p.Package),
		PricePerDay: p.PricePerDay,
		Days:        p.Days,
		Total:       p.Total,
		KmIncluded:  p.KmIncluded,
	}
}
