package admin

import "github.com/m04kA/SMC-BikeRental/internal/domain"

// BikeRequest тело создания и изменения байка
type BikeRequest struct {
	Name            string  `json:"name" validate:"required,max=100"`
	Image           string  `json:"image"`
	Type            string  `json:"type" validate:"required,max=50"`
	Seat            int     `json:"seat" validate:"gte=1,lte=4"`
	Oil             string  `json:"oil"`
	City            string  `json:"city" validate:"required,max=100"`
	Area            string  `json:"area" validate:"required,max=100"`
	DayPrice        float64 `json:"day_price" validate:"gt=0"`
	SevenDayPrice   float64 `json:"seven_day_price" validate:"gte=0"`
	FifteenDayPrice float64 `json:"fifteen_day_price" validate:"gte=0"`
	MonthPrice      float64 `json:"month_price" validate:"gte=0"`
	Limit           int     `json:"limit" validate:"gte=0"`
	Extra           float64 `json:"extra" validate:"gte=0"`
	Fuel            string  `json:"fuel"`
	Deposit         float64 `json:"deposit" validate:"gte=0"`
	MakeYear        int     `json:"make_year" validate:"gte=1950,lte=2100"`
}

// CityRequest тело создания и изменения города
type CityRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Image string `json:"image"`
}

// AreaRequest тело создания района
type AreaRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	CityID int64  `json:"city_id" validate:"gt=0"`
}

// OfferRequest тело создания и изменения купона
type OfferRequest struct {
	Title        string `json:"title" validate:"required,max=150"`
	Description  string `json:"description" validate:"max=1000"`
	Image        string `json:"image"`
	Coupon       string `json:"coupon" validate:"required,max=50"`
	CouponExpiry string `json:"coupon_expiry" validate:"required,datetime=2006-01-02"`
}

func (r *BikeRequest) toDomain() *domain.Bike {
	return &domain.Bike{
		Name:            r.Name,
		Image:           r.Image,
		Type:            r.Type,
		Seat:            r.Seat,
		Oil:             r.Oil,
		City:            r.City,
		Area:            r.Area,
		DayPrice:        r.DayPrice,
		SevenDayPrice:   r.SevenDayPrice,
		FifteenDayPrice: r.FifteenDayPrice,
		MonthPrice:      r.MonthPrice,
		Limit:           r.Limit,
		Extra:           r.Extra,
		Fuel:            r.Fuel,
		Deposit:         r.Deposit,
		MakeYear:        r.MakeYear,
	}
}

func (r *CityRequest) toDomain() *domain.City {
	return &domain.City{Name: r.Name, Image: r.Image}
}

func (r *AreaRequest) toDomain() *domain.Area {
	return &domain.Area{Name: r.Name, CityID: r.CityID}
}

func (r *OfferRequest) toDomain() *domain.Offer {
	return &domain.Offer{
		Title:        r.Title,
		Description:  r.Description,
		Image:        r.Image,
		Coupon:       r.Coupon,
		CouponExpiry: r.CouponExpiry,
	}
}
