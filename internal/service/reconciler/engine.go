package reconciler

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
)

// Engine держит время получения, время возврата и длительность аренды согласованными.
// Длительность не задается напрямую: она пересчитывается после каждого изменения.
type Engine struct {
	store        SearchStore
	timeProvider TimeProvider
	loc          *time.Location
}

// NewEngine создает engine поверх хранилища одной сессии.
// loc определяет, какой календарный день считается "сегодня".
func NewEngine(store SearchStore, timeProvider TimeProvider, loc *time.Location) *Engine {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &Engine{
		store:        store,
		timeProvider: timeProvider,
		loc:          loc,
	}
}

// Window возвращает текущее окно аренды в локальной зоне engine
func (e *Engine) Window() domain.RentalWindow {
	st := e.store.Snapshot()
	return domain.NewRentalWindow(st.PickupAt.In(e.loc), st.DropoffAt.In(e.loc))
}

// SetPickupDate меняет дату получения, сохраняя час.
// Возврат переносится на тот же час следующего дня.
func (e *Engine) SetPickupDate(date time.Time) (domain.RentalWindow, error) {
	if e.IsDateDisabled(domain.SidePickup, date) {
		return domain.RentalWindow{}, fmt.Errorf("%w: pickup %s is in the past", ErrDateDisabled, e.dateOnly(date).Format(domain.DateFormat))
	}

	w := e.Window()
	pickup := domain.WithDate(w.PickupAt, e.dateOnly(date))
	return e.apply(pickup, pickup.AddDate(0, 0, 1)), nil
}

// SetPickupTime меняет только час получения.
// Возврат всегда сбрасывается на дату получения + 1 день в новый час.
func (e *Engine) SetPickupTime(hour int) (domain.RentalWindow, error) {
	if err := validateHour(hour); err != nil {
		return domain.RentalWindow{}, err
	}
	if !containsHour(e.SelectableSlots(domain.SidePickup), hour) {
		return domain.RentalWindow{}, fmt.Errorf("%w: pickup at %s", ErrSlotUnavailable, domain.SlotLabel(hour))
	}

	w := e.Window()
	pickup := domain.WithHour(w.PickupAt, hour)
	return e.apply(pickup, pickup.AddDate(0, 0, 1)), nil
}

// SetDropoffDate меняет дату возврата, сохраняя час возврата. Получение не меняется.
func (e *Engine) SetDropoffDate(date time.Time) (domain.RentalWindow, error) {
	if e.IsDateDisabled(domain.SideDropoff, date) {
		return domain.RentalWindow{}, fmt.Errorf("%w: dropoff %s is before pickup", ErrDateDisabled, e.dateOnly(date).Format(domain.DateFormat))
	}

	w := e.Window()
	dropoff := domain.WithDate(w.DropoffAt, e.dateOnly(date))
	if dropoff.Before(w.PickupAt) {
		return domain.RentalWindow{}, fmt.Errorf("%w: %s < %s", ErrDropoffBeforePickup,
			dropoff.Format(time.RFC3339), w.PickupAt.Format(time.RFC3339))
	}
	return e.apply(w.PickupAt, dropoff), nil
}

// SetDropoffTime меняет только час возврата. Получение не меняется.
func (e *Engine) SetDropoffTime(hour int) (domain.RentalWindow, error) {
	if err := validateHour(hour); err != nil {
		return domain.RentalWindow{}, err
	}
	if !containsHour(e.SelectableSlots(domain.SideDropoff), hour) {
		return domain.RentalWindow{}, fmt.Errorf("%w: dropoff at %s", ErrSlotUnavailable, domain.SlotLabel(hour))
	}

	w := e.Window()
	dropoff := domain.WithHour(w.DropoffAt, hour)
	if dropoff.Before(w.PickupAt) {
		return domain.RentalWindow{}, fmt.Errorf("%w: %s < %s", ErrDropoffBeforePickup,
			dropoff.Format(time.RFC3339), w.PickupAt.Format(time.RFC3339))
	}
	return e.apply(w.PickupAt, dropoff), nil
}

// ApplyPackage переносит возврат на длину пакета от получения в тот же час
func (e *Engine) ApplyPackage(p domain.PackageSelector) (domain.RentalWindow, error) {
	if !p.IsValid() {
		return domain.RentalWindow{}, fmt.Errorf("%w: %q", domain.ErrUnknownPackage, p)
	}

	w := e.Window()
	return e.apply(w.PickupAt, p.DropoffFrom(w.PickupAt)), nil
}

// RollForward переносит окно, время получения которого уже прошло, на ближайший
// доступный час с сохранением длительности. Возвращает false, если переносить не нужно.
func (e *Engine) RollForward() (domain.RentalWindow, bool) {
	w := e.Window()
	now := e.now()
	if w.PickupAt.After(now) {
		return w, false
	}

	span := w.DropoffAt.Sub(w.PickupAt)
	if span <= 0 {
		span = domain.DefaultRentalHours * time.Hour
	}
	pickup := domain.DefaultRentalWindow(now).PickupAt
	return e.apply(pickup, pickup.Add(span)), true
}

// RecomputeDuration пересчитывает длительность из текущих времен и записывает ее в хранилище
func (e *Engine) RecomputeDuration() domain.Duration {
	w := e.Window()
	e.store.UpdateDuration(w.Duration.Days, w.Duration.Hours)
	return w.Duration
}

func (e *Engine) apply(pickup, dropoff time.Time) domain.RentalWindow {
	e.store.UpdatePickupDateTime(domain.TruncateToHour(pickup))
	e.store.UpdateDropoffDateTime(domain.TruncateToHour(dropoff))
	e.RecomputeDuration()
	return e.Window()
}

func (e *Engine) now() time.Time {
	return e.timeProvider.Now().In(e.loc)
}

// dateOnly переводит календарную дату в полночь зоны engine.
// Берутся компоненты даты как есть, без конвертации зоны.
func (e *Engine) dateOnly(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, e.loc)
}

func validateHour(hour int) error {
	if hour < 0 || hour >= domain.SlotsPerDay {
		return fmt.Errorf("%w: got %d", ErrInvalidHour, hour)
	}
	return nil
}
