package domain

import (
	"strings"
	"time"
)

// CityPlaceholder is what clients show before a city is chosen.
const CityPlaceholder = "Select City"

// SearchState is the canonical per-session search widget state.
type SearchState struct {
	City      string
	PickupAt  time.Time
	DropoffAt time.Time
	Duration  Duration
}

// DefaultSearchState returns the state a fresh session starts with.
func DefaultSearchState(now time.Time) SearchState {
	w := DefaultRentalWindow(now)
	return SearchState{
		PickupAt:  w.PickupAt,
		DropoffAt: w.DropoffAt,
		Duration:  w.Duration,
	}
}

// Window returns the pickup/dropoff pair with a freshly derived duration.
func (s SearchState) Window() RentalWindow {
	return NewRentalWindow(s.PickupAt, s.DropoffAt)
}

// HasCity returns true if the user picked a real city
func (s SearchState) HasCity() bool {
	c := strings.TrimSpace(s.City)
	return c != "" && !strings.EqualFold(c, CityPlaceholder)
}

// Side selects which end of the rental window an operation applies to.
type Side string

const (
	SidePickup  Side = "pickup"
	SideDropoff Side = "dropoff"
)

// IsValid reports whether s is pickup or dropoff.
func (s Side) IsValid() bool {
	return s == SidePickup || s == SideDropoff
}
