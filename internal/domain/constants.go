package domain

import "time"

// Default values
const (
	DefaultRentalHours   = 24
	DefaultPackage       = PackageDaily
	DefaultTimezone      = "Asia/Dhaka"
	DefaultSessionTTL    = 24 * time.Hour
	DefaultCalendarDays  = 42 // six calendar weeks
	MaxCalendarDays      = 366
	SlotsPerDay          = 24
	PlaceholderEmailHost = "@temp.com"
)

// Business validation constants
const (
	PhonePattern  = `^01[0-9]{9}$`
	OTPLength     = 4
	MaxCityLength = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02"
	// ISOFormat matches what browsers produce with Date.toISOString()
	ISOFormat = "2006-01-02T15:04:05.000Z"
)
