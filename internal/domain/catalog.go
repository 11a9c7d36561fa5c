package domain

import (
	"strings"
	"time"
)

// Bike is a bike record as served by the rental API.
type Bike struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Image           string  `json:"image"`
	Type            string  `json:"type"` // transmission: gear, automatic, ...
	Seat            int     `json:"seat"`
	Oil             string  `json:"oil"`
	City            string  `json:"city"`
	Area            string  `json:"area"`
	DayPrice        float64 `json:"day_price"`
	SevenDayPrice   float64 `json:"seven_day_price"`
	FifteenDayPrice float64 `json:"fifteen_day_price"`
	MonthPrice      float64 `json:"month_price"`
	Limit           int     `json:"limit"` // km included
	Extra           float64 `json:"extra"` // price per extra km
	Fuel            string  `json:"fuel"`
	Deposit         float64 `json:"deposit"`
	MakeYear        int     `json:"make_year"`
	CreatedAt       string  `json:"createdAt,omitempty"`
	UpdatedAt       string  `json:"updatedAt,omitempty"`
}

// PricePerDay returns the per-day rate the bike charges for a package.
// Packages longer than a month are billed at the monthly rate.
func (b *Bike) PricePerDay(p PackageSelector) float64 {
	switch p {
	case PackageDaily:
		return b.DayPrice
	case Package7Days:
		return b.SevenDayPrice
	case Package15Days:
		return b.FifteenDayPrice
	default:
		return b.MonthPrice
	}
}

// City represents a city with its pickup areas
type City struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
	Areas []Area `json:"areas,omitempty"`
}

// Area is a pickup branch inside a city.
type Area struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	CityID int64  `json:"city_id,omitempty"`
}

// Offer is a coupon shown on the offers page.
type Offer struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	Coupon       string `json:"coupon"`
	CouponExpiry string `json:"coupon_expiry"`
}

// Service is a marketing service card.
type Service struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// UserRole distinguishes customers from back-office users.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is the profile returned after OTP verification.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Phone string   `json:"phone"`
	Role  UserRole `json:"role"`
}

// IsAdmin reports whether the user may use the back-office.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// AuthResult is the payload of a successful OTP verification.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// BikeSearch is the body of a bike availability search.
type BikeSearch struct {
	City      string
	PickupAt  time.Time
	DropoffAt time.Time
}

// ResolveImage joins the static files prefix and an image name.
// Absolute URLs are returned unchanged.
func ResolveImage(base, image string) string {
	if image == "" || strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	return base + image
}
