package search_bikes

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
	"github.com/m04kA/SMC-BikeRental/internal/service/filterstate"
)

// UseCase use case поиска байков по форме поиска и фильтрам сессии
type UseCase struct {
	client       RentalClient
	metrics      MetricsCollector
	imageBaseURL string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client RentalClient, imageBaseURL string, metrics MetricsCollector, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		metrics:      metrics,
		imageBaseURL: imageBaseURL,
		logger:       logger,
	}
}

// Execute выполняет поиск: запрос к API, группировка по моделям, фильтры, цены по пакету
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация формы поиска
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SearchBikes: validation failed: %v", err)
		return nil, err
	}

	window := req.Search.Window()
	pkg := req.Filters.Package
	if !pkg.IsValid() {
		pkg = domain.DefaultPackage
	}

	uc.logger.Info("SearchBikes: city=%s, pickup=%s, dropoff=%s, package=%s",
		req.Search.City, window.PickupAt.Format(domain.ISOFormat), window.DropoffAt.Format(domain.ISOFormat), pkg)

	// 2. Запрос к API проката
	bikes, err := uc.client.SearchBikes(ctx, domain.BikeSearch{
		City:      req.Search.City,
		PickupAt:  window.PickupAt,
		DropoffAt: window.DropoffAt,
	})
	if err != nil {
		uc.logger.Error("SearchBikes: rental API search failed for city=%s: %v", req.Search.City, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	// 3. Группировка и фильтры
	found := len(domain.GroupBikes(bikes))
	groups := filterstate.Apply(req.Filters, bikes)

	// 4. Карточки с ценами
	listings := make([]Listing, 0, len(groups))
	for _, g := range groups {
		listings = append(listings, uc.toListing(g, pkg))
	}

	if uc.metrics != nil {
		uc.metrics.ObserveSearchResults(len(listings))
	}

	uc.logger.Info("SearchBikes: city=%s, %d bikes, %d models, %d after filters",
		req.Search.City, len(bikes), found, len(listings))

	return &Response{
		City:    req.Search.City,
		Window:  window,
		Package: pkg,
		Found:   found,
		Bikes:   listings,
	}, nil
}

func (uc *UseCase) toListing(g domain.BikeGroup, pkg domain.PackageSelector) Listing {
	packages := make([]domain.PackagePrice, 0, len(domain.CardPackages))
	for _, p := range domain.CardPackages {
		packages = append(packages, g.Bike.Quote(p))
	}

	return Listing{
		Bike:      g.Bike,
		ImageURL:  domain.ResolveImage(uc.imageBaseURL, g.Bike.Image),
		Locations: g.Locations,
		Price:     g.Bike.Quote(pkg),
		Packages:  packages,
	}
}
