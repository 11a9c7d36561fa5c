package change_package

import (
	"github.com/m04kA/SMC-BikeRental/internal/domain"
	"github.com/m04kA/SMC-BikeRental/internal/usecase/search_bikes"
)

// Request модель запроса смены пакета
type Request struct {
	SessionID string
	Package   string // Селектор ("7days") или подпись с карточки ("Weekly")
}

// Response модель ответа: новый интервал и выдача по нему.
// Search равен nil, если город еще не выбран или поиск не удался (тогда заполнен SearchErr)
type Response struct {
	Package   domain.PackageSelector
	Window    domain.RentalWindow
	Search    *search_bikes.Response
	SearchErr error
}
