package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSlotLabel is returned when a "<hour> AM|PM" label cannot be parsed.
var ErrInvalidSlotLabel = errors.New("invalid time slot label")

// TimeSlot is one hour-of-day option offered in the time picker
type TimeSlot struct {
	Label  string `json:"label"`
	Hour24 int    `json:"hour"`
}

var timeSlots = func() []TimeSlot {
	slots := make([]TimeSlot, SlotsPerDay)
	for h := 0; h < SlotsPerDay; h++ {
		slots[h] = TimeSlot{Label: SlotLabel(h), Hour24: h}
	}
	return slots
}()

// TimeSlots returns a copy of the fixed 24-slot sequence in ascending hour order.
func TimeSlots() []TimeSlot {
	out := make([]TimeSlot, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// SlotLabel formats an hour in 0..23 as "<1-12> AM|PM".
func SlotLabel(hour24 int) string {
	hour := hour24 % 12
	if hour == 0 {
		hour = 12
	}
	period := "AM"
	if hour24 >= 12 {
		period = "PM"
	}
	return fmt.Sprintf("%d %s", hour, period)
}

// ParseSlotLabel converts "<1-12> AM|PM" back to an hour in 0..23.
func ParseSlotLabel(label string) (int, error) {
	parts := strings.Fields(strings.ToUpper(label))
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, label)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, label)
	}

	switch parts[1] {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, label)
	}
	return hour, nil
}
