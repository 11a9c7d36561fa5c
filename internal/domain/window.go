package domain

import "time"

// Duration is the elapsed rental time decomposed into whole days and remainder hours.
type Duration struct {
	Days  int `json:"days"`
	Hours int `json:"hours"`
}

// TotalHours returns the duration expressed in hours.
func (d Duration) TotalHours() int {
	return d.Days*24 + d.Hours
}

// IsNegative reports whether the duration was computed from a dropoff before pickup.
func (d Duration) IsNegative() bool {
	return d.TotalHours() < 0
}

// RentalWindow is the pickup/dropoff pair together with its derived duration.
type RentalWindow struct {
	PickupAt  time.Time
	DropoffAt time.Time
	Duration  Duration
}

// NewRentalWindow builds a window and derives its duration.
func NewRentalWindow(pickup, dropoff time.Time) RentalWindow {
	pickup = TruncateToHour(pickup)
	dropoff = TruncateToHour(dropoff)
	return RentalWindow{
		PickupAt:  pickup,
		DropoffAt: dropoff,
		Duration:  DurationBetween(pickup, dropoff),
	}
}

// DefaultRentalWindow returns the window offered before the user edits anything:
// pickup at the start of the next hour, dropoff 24 hours later.
func DefaultRentalWindow(now time.Time) RentalWindow {
	pickup := TruncateToHour(now).Add(time.Hour)
	return NewRentalWindow(pickup, pickup.Add(DefaultRentalHours*time.Hour))
}

// IsValid reports whether dropoff is not before pickup.
func (w RentalWindow) IsValid() bool {
	return !w.DropoffAt.Before(w.PickupAt)
}

// DurationBetween returns the whole hours between two hour-truncated timestamps
// split into floored days and the remaining hours in [0, 24).
// Negative spans are not clamped: -29h is {Days: -2, Hours: 19}.
func DurationBetween(pickup, dropoff time.Time) Duration {
	total := int(TruncateToHour(dropoff).Sub(TruncateToHour(pickup)) / time.Hour)
	days, hours := total/24, total%24
	if hours < 0 {
		days--
		hours += 24
	}
	return Duration{Days: days, Hours: hours}
}

// TruncateToHour zeroes minutes, seconds and nanoseconds in t's own location.
func TruncateToHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay reports whether both timestamps fall on the same calendar date.
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// WithDate keeps the hour of t and moves it to the calendar date of date.
func WithDate(t, date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), 0, 0, 0, t.Location())
}

// WithHour keeps the calendar date of t and sets the hour.
func WithHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}
