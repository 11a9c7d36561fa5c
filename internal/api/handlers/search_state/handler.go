package search_state

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-BikeRental/internal/api/handlers"
	"github.com/m04kA/SMC-BikeRental/internal/api/middleware"
	"github.com/m04kA/SMC-BikeRental/internal/domain"
	"github.com/m04kA/SMC-BikeRental/internal/service/reconciler"
	"github.com/m04kA/SMC-BikeRental/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidCity        = "city is required and must be at most 100 characters"
	msgNothingToUpdate    = "date, time or hour is required"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgInvalidTime        = "invalid time, expected a slot label like 3 PM"
	msgInvalidHour        = "hour must be between 0 and 23"
	msgDateDisabled       = "this date cannot be selected"
	msgSlotUnavailable    = "this time slot cannot be selected"
	msgDropoffBefore      = "dropoff cannot be before pickup"
	msgInvalidSide        = "side must be pickup or dropoff"
	msgInvalidDays        = "days must be a positive number"
	msgInvalidSession     = "invalid session"
)

type Handler struct {
	sessions SessionRunner
	loc      *time.Location
	logger   Logger
}

func NewHandler(sessions SessionRunner, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		loc:      loc,
		logger:   logger,
	}
}

// Get GET /api/v1/search
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	var resp SearchStateResponse
	err := h.sessions.Do(r.Context(), middleware.GetSessionID(r.Context()), func(s *sessions.Session) error {
		resp = FromState(s.Search.Snapshot(), s.Engine.Window())
		return nil
	})
	if err != nil {
		h.respondError(w, "GET /search", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// UpdateCity PUT /api/v1/search/city
func (h *Handler) UpdateCity(w http.ResponseWriter, r *http.Request) {
	var req UpdateCityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /search/city - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	city := strings.TrimSpace(req.City)
	if city == "" || len(city) > domain.MaxCityLength || strings.EqualFold(city, domain.CityPlaceholder) {
		handlers.RespondBadRequest(w, msgInvalidCity)
		return
	}

	var resp SearchStateResponse
	err := h.sessions.Do(r.Context(), middleware.GetSessionID(r.Context()), func(s *sessions.Session) error {
		s.Search.UpdateCity(city)
		resp = FromState(s.Search.Snapshot(), s.Engine.Window())
		return nil
	})
	if err != nil {
		h.respondError(w, "PUT /search/city", err)
		return
	}

	h.logger.Info("PUT /search/city - City set to %s", city)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// UpdatePickup PATCH /api/v1/search/pickup
func (h *Handler) UpdatePickup(w http.ResponseWriter, r *http.Request) {
	h.updateEnd(w, r, domain.SidePickup)
}

// UpdateDropoff PATCH /api/v1/search/dropoff
func (h *Handler) UpdateDropoff(w http.ResponseWriter, r *http.Request) {
	h.updateEnd(w, r, domain.SideDropoff)
}

func (h *Handler) updateEnd(w http.ResponseWriter, r *http.Request, side domain.Side) {
	route := "PATCH /search/" + string(side)

	var req UpdateEndRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Date == nil && req.Time == nil && req.Hour == nil {
		handlers.RespondBadRequest(w, msgNothingToUpdate)
		return
	}

	var date *time.Time
	if req.Date != nil {
		d, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(*req.Date), h.loc)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = &d
	}

	hour := req.Hour
	if hour == nil && req.Time != nil {
		parsed, err := domain.ParseSlotLabel(*req.Time)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		hour = &parsed
	}

	var resp SearchStateResponse
	err := h.sessions.Do(r.Context(), middleware.GetSessionID(r.Context()), func(s *sessions.Session) error {
		prev := s.Search.Snapshot()
		if err := applyEnd(s.Engine, side, date, hour); err != nil {
			// Дата могла примениться до ошибки во времени: возвращаем форму целиком
			if s.Search.Snapshot() != prev {
				restore(s, prev)
			}
			return err
		}
		resp = FromState(s.Search.Snapshot(), s.Engine.Window())
		return nil
	})
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - pickup=%s %s, dropoff=%s %s, duration=%dd%dh", route,
		resp.PickupDate, resp.PickupTime, resp.DropoffDate, resp.DropoffTime, resp.Duration.Days, resp.Duration.Hours)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Slots GET /api/v1/search/slots?side=pickup|dropoff
func (h *Handler) Slots(w http.ResponseWriter, r *http.Request) {
	side, ok := parseSide(r)
	if !ok {
		handlers.RespondBadRequest(w, msgInvalidSide)
		return
	}

	var resp []SlotResponse
	err := h.sessions.Do(r.Context(), middleware.GetSessionID(r.Context()), func(s *sessions.Session) error {
		resp = fromSlots(s.Engine.SelectableSlots(side))
		return nil
	})
	if err != nil {
		h.respondError(w, "GET /search/slots", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Calendar GET /api/v1/search/calendar?side=pickup|dropoff&from=YYYY-MM-DD&days=N
// По умолчанию from - первый день месяца выбранной даты
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	side, ok := parseSide(r)
	if !ok {
		handlers.RespondBadRequest(w, msgInvalidSide)
		return
	}

	var from *time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		d, err := time.ParseInLocation(domain.DateFormat, raw, h.loc)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		from = &d
	}

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		days = n
	}

	var resp []CalendarDayResponse
	err := h.sessions.Do(r.Context(), middleware.GetSessionID(r.Context()), func(s *sessions.Session) error {
		start := monthStart(s.Engine.Window(), side)
		if from != nil {
			start = *from
		}
		cal, err := s.Engine.Calendar(side, start, days)
		if err != nil {
			return err
		}
		resp = fromCalendar(cal)
		return nil
	})
	if err != nil {
		h.respondError(w, "GET /search/calendar", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, reconciler.ErrDateDisabled):
		h.logger.Warn("%s - %v", route, err)
		handlers.RespondBadRequest(w, msgDateDisabled)
	case errors.Is(err, reconciler.ErrSlotUnavailable):
		h.logger.Warn("%s - %v", route, err)
		handlers.RespondBadRequest(w, msgSlotUnavailable)
	case errors.Is(err, reconciler.ErrInvalidHour):
		handlers.RespondBadRequest(w, msgInvalidHour)
	case errors.Is(err, reconciler.ErrDropoffBeforePickup):
		h.logger.Warn("%s - %v", route, err)
		handlers.RespondBadRequest(w, msgDropoffBefore)
	case errors.Is(err, reconciler.ErrInvalidSide):
		handlers.RespondBadRequest(w, msgInvalidSide)
	case errors.Is(err, sessions.ErrInvalidSessionID):
		handlers.RespondBadRequest(w, msgInvalidSession)
	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}

func applyEnd(e *reconciler.Engine, side domain.Side, date *time.Time, hour *int) error {
	if side == domain.SidePickup {
		if date != nil {
			if _, err := e.SetPickupDate(*date); err != nil {
				return err
			}
		}
		if hour != nil {
			if _, err := e.SetPickupTime(*hour); err != nil {
				return err
			}
		}
		return nil
	}

	if date != nil {
		if _, err := e.SetDropoffDate(*date); err != nil {
			return err
		}
	}
	if hour != nil {
		if _, err := e.SetDropoffTime(*hour); err != nil {
			return err
		}
	}
	return nil
}

func restore(s *sessions.Session, prev domain.SearchState) {
	s.Search.UpdatePickupDateTime(prev.PickupAt)
	s.Search.UpdateDropoffDateTime(prev.DropoffAt)
	s.Search.UpdateDuration(prev.Duration.Days, prev.Duration.Hours)
}

func parseSide(r *http.Request) (domain.Side, bool) {
	side := domain.Side(strings.ToLower(r.URL.Query().Get("side")))
	if side == "" {
		side = domain.SidePickup
	}
	return side, side.IsValid()
}

func monthStart(w domain.RentalWindow, side domain.Side) time.Time {
	t := w.PickupAt
	if side == domain.SideDropoff {
		t = w.DropoffAt
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
