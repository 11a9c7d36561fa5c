package search_bikes

import "github.com/m04kA/SMC-BikeRental/internal/domain"

// Request модель запроса поиска: снимки формы поиска и фильтров сессии
type Request struct {
	Search  domain.SearchState
	Filters domain.FilterState
}

// Response модель ответа поиска
type Response struct {
	City    string
	Window  domain.RentalWindow
	Package domain.PackageSelector
	Found   int       // Моделей до применения фильтров
	Bikes   []Listing // Модели, прошедшие фильтры
}

// Listing карточка модели байка в выдаче
type Listing struct {
	Bike      domain.Bike
	ImageURL  string
	Locations []domain.Location
	Price     domain.PackagePrice   // Цена по выбранному пакету
	Packages  []domain.PackagePrice // Цены для выбора на карточке
}
