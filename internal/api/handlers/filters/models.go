package filters

import (
	"time"

	searchHandler "github.com/m04kA/SMC-BikeRental/internal/api/handlers/search_bikes"
	"github.com/m04kA/SMC-BikeRental/internal/domain"
	"github.com/m04kA/SMC-BikeRental/internal/usecase/change_package"
)

// FiltersResponse выбранные фильтры сессии
type FiltersResponse struct {
	Package      string   `json:"package"`
	Transmission []string `json:"transmission"`
	Branch       []string `json:"branch"`
	Brand        []string `json:"brand"`
}

// ChangePackageRequest PUT /filters/package
type ChangePackageRequest struct {
	Package string `json:"package"`
}

// ChangePackageResponse новый пакет, интервал и выдача по нему.
// Search отсутствует, если город еще не выбран. SearchError заполнен, если
// пакет применен, но выдачу загрузить не удалось
type ChangePackageResponse struct {
	Package     string                        `json:"package"`
	PickupAt    string                        `json:"pickupAt"`
	DropoffAt   string                        `json:"dropoffAt"`
	Duration    domain.Duration               `json:"duration"`
	Search      *searchHandler.SearchResponse `json:"search,omitempty"`
	SearchError string                        `json:"searchError,omitempty"`
}

// ToggleRequest POST /filters/{category}/toggle
type ToggleRequest struct {
	Value string `json:"value"`
}

func fromState(f domain.FilterState) FiltersResponse {
	return FiltersResponse{
		Package:      string(f.Package),
		Transmission: f.Transmission,
		Branch:       f.Branch,
		Brand:        f.Brand,
	}
}

func fromChangePackage(r *change_package.Response) ChangePackageResponse {
	return ChangePackageResponse{
		Package:   string(r.Package),
		PickupAt:  r.Window.PickupAt.Format(time.RFC3339),
		DropoffAt: r.Window.DropoffAt.Format(time.RFC3339),
		Duration:  r.Window.Duration,
		Search:    searchHandler.FromResponse(r.Search),
	}
}
