package search_state

import (
	"time"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
	"github.com/m04kA/SMC-BikeRental/internal/service/reconciler"
)

// SearchStateResponse состояние формы поиска
type SearchStateResponse struct {
	City         string           `json:"city"`
	CitySelected bool             `json:"citySelected"`
	PickupAt     string           `json:"pickupAt"`    // RFC3339 в часовом поясе сервиса
	DropoffAt    string           `json:"dropoffAt"`   // RFC3339 в часовом поясе сервиса
	PickupDate   string           `json:"pickupDate"`  // "2024-05-01"
	PickupTime   string           `json:"pickupTime"`  // "3 PM"
	DropoffDate  string           `json:"dropoffDate"` // "2024-05-02"
	DropoffTime  string           `json:"dropoffTime"` // "3 PM"
	Duration     DurationResponse `json:"duration"`
}

type DurationResponse struct {
	Days  int `json:"days"`
	Hours int `json:"hours"`
}

// UpdateCityRequest PUT /search/city
type UpdateCityRequest struct {
	City string `json:"city"`
}

// UpdateEndRequest PATCH /search/pickup и /search/dropoff.
// Время передается подписью слота ("3 PM") или часом 0-23
type UpdateEndRequest struct {
	Date *string `json:"date,omitempty"`
	Time *string `json:"time,omitempty"`
	Hour *int    `json:"hour,omitempty"`
}

type SlotResponse struct {
	Label string `json:"label"`
	Hour  int    `json:"hour"`
}

type CalendarDayResponse struct {
	Date     string `json:"date"`
	Disabled bool   `json:"disabled"`
}

// FromState собирает ответ из снимка формы и окна аренды
func FromState(state domain.SearchState, w domain.RentalWindow) SearchStateResponse {
	city := state.City
	if !state.HasCity() {
		city = domain.CityPlaceholder
	}
	return SearchStateResponse{
		City:         city,
		CitySelected: state.HasCity(),
		PickupAt:     w.PickupAt.Format(time.RFC3339),
		DropoffAt:    w.DropoffAt.Format(time.RFC3339),
		PickupDate:   w.PickupAt.Format(domain.DateFormat),
		PickupTime:   domain.SlotLabel(w.PickupAt.Hour()),
		DropoffDate:  w.DropoffAt.Format(domain.DateFormat),
		DropoffTime:  domain.SlotLabel(w.DropoffAt.Hour()),
		Duration: DurationResponse{
			Days:  w.Duration.Days,
			Hours: w.Duration.Hours,
		},
	}
}

func fromSlots(slots []domain.TimeSlot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{Label: s.Label, Hour: s.Hour24})
	}
	return out
}

func fromCalendar(days []reconciler.CalendarDay) []CalendarDayResponse {
	out := make([]CalendarDayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, CalendarDayResponse{Date: d.Date.Format(domain.DateFormat), Disabled: d.Disabled})
	}
	return out
}
