package reconciler

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
)

// SelectableSlots возвращает часы, доступные для выбора на указанной стороне.
// Результат не кэшируется: "сейчас" меняется между вызовами.
//
// - pickup: если дата получения не сегодня - все 24 слота, иначе только часы позже текущего
// - dropoff: если дата возврата не совпадает с датой получения - все 24, иначе только часы позже часа получения
func (e *Engine) SelectableSlots(side domain.Side) []domain.TimeSlot {
	w := e.Window()
	all := domain.TimeSlots()

	var after int
	switch side {
	case domain.SidePickup:
		now := e.now()
		if !domain.IsSameDay(w.PickupAt, now) {
			return all
		}
		after = now.Hour()
	case domain.SideDropoff:
		if !domain.IsSameDay(w.DropoffAt, w.PickupAt) {
			return all
		}
		after = w.PickupAt.Hour()
	default:
		return []domain.TimeSlot{}
	}

	result := make([]domain.TimeSlot, 0, len(all))
	for _, slot := range all {
		if slot.Hour24 > after {
			result = append(result, slot)
		}
	}
	return result
}

// IsDateDisabled реализует предикат календаря.
//
// - pickup: дата строго раньше сегодняшнего дня недоступна
// - dropoff: дата получения всегда доступна, иначе недоступны даты строго раньше даты получения
func (e *Engine) IsDateDisabled(side domain.Side, date time.Time) bool {
	d := e.dateOnly(date)

	switch side {
	case domain.SidePickup:
		return d.Before(domain.StartOfDay(e.now()))
	case domain.SideDropoff:
		pickup := e.Window().PickupAt
		if domain.IsSameDay(d, pickup) {
			return false
		}
		return d.Before(domain.StartOfDay(pickup))
	default:
		return true
	}
}

// CalendarDay одна клетка календаря
type CalendarDay struct {
	Date     time.Time
	Disabled bool
}

// Calendar возвращает days дней начиная с from с отметкой доступности
func (e *Engine) Calendar(side domain.Side, from time.Time, days int) ([]CalendarDay, error) {
	if !side.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSide, side)
	}
	if days <= 0 || days > domain.MaxCalendarDays {
		days = domain.DefaultCalendarDays
	}

	start := e.dateOnly(from)
	result := make([]CalendarDay, days)
	for i := range result {
		d := start.AddDate(0, 0, i)
		result[i] = CalendarDay{Date: d, Disabled: e.IsDateDisabled(side, d)}
	}
	return result, nil
}

func containsHour(slots []domain.TimeSlot, hour int) bool {
	for _, s := range slots {
		if s.Hour24 == hour {
			return true
		}
	}
	return false
}
