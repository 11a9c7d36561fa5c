package search_bikes

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BikeRental/internal/api/handlers"
	"github.com/m04kA/SMC-BikeRental/internal/api/middleware"
	"github.com/m04kA/SMC-BikeRental/internal/service/sessions"
	"github.com/m04kA/SMC-BikeRental/internal/usecase/search_bikes"
)

const (
	msgCityNotSelected = "please select a city first"
	msgInvalidWindow   = "dropoff cannot be before pickup"
	msgInvalidSession  = "invalid session"
)

type Handler struct {
	sessions SessionRunner
	useCase  UseCase
	logger   Logger
}

func NewHandler(sessions SessionRunner, useCase UseCase, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		useCase:  useCase,
		logger:   logger,
	}
}

// Handle GET /api/v1/bikes/search
// Ищет по сохраненной в сессии форме поиска и фильтрам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req search_bikes.Request
	err := h.sessions.Do(r.Context(), middleware.GetSessionID(r.Context()), func(s *sessions.Session) error {
		req = search_bikes.Request{
			Search:  s.Search.Snapshot(),
			Filters: s.Filters.Snapshot(),
		}
		return nil
	})
	if err != nil {
		RespondError(w, h.logger, "GET /bikes/search", err)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		RespondError(w, h.logger, "GET /bikes/search", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromResponse(resp))
}

// RespondError переводит ошибки поиска в HTTP-ответ
func RespondError(w http.ResponseWriter, logger Logger, route string, err error) {
	switch {
	case errors.Is(err, search_bikes.ErrCityNotSelected):
		logger.Warn("%s - %v", route, err)
		handlers.RespondBadRequest(w, msgCityNotSelected)
	case errors.Is(err, search_bikes.ErrInvalidWindow):
		logger.Warn("%s - %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
	case errors.Is(err, search_bikes.ErrUpstream):
		logger.Error("%s - %v", route, err)
		handlers.RespondBadGateway(w)
	case errors.Is(err, sessions.ErrInvalidSessionID):
		handlers.RespondBadRequest(w, msgInvalidSession)
	default:
		logger.Error("%s - Unexpected error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
