package filters

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BikeRental/internal/api/handlers"
	searchHandler "github.com/m04kA/SMC-BikeRental/internal/api/handlers/search_bikes"
	"github.com/m04kA/SMC-BikeRental/internal/api/middleware"
	"github.com/m04kA/SMC-BikeRental/internal/domain"
	"github.com/m04kA/SMC-BikeRental/internal/service/filterstate"
	"github.com/m04kA/SMC-BikeRental/internal/service/sessions"
	"github.com/m04kA/SMC-BikeRental/internal/usecase/change_package"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidPackage     = "unknown rental package"
	msgUnknownCategory    = "unknown filter category"
	msgEmptyValue         = "filter value is required"
	msgInvalidSession     = "invalid session"
	msgSearchFailed       = "failed to load bikes"
)

type Handler struct {
	sessions      SessionRunner
	changePackage ChangePackageUseCase
	logger        Logger
}

func NewHandler(sessions SessionRunner, changePackage ChangePackageUseCase, logger Logger) *Handler {
	return &Handler{
		sessions:      sessions,
		changePackage: changePackage,
		logger:        logger,
	}
}

// Get GET /api/v1/filters
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	var resp FiltersResponse
	err := h.sessions.Do(r.Context(), middleware.GetSessionID(r.Context()), func(s *sessions.Session) error {
		resp = fromState(s.Filters.Snapshot())
		return nil
	})
	if err != nil {
		h.respondError(w, "GET /filters", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// ChangePackage PUT /api/v1/filters/package
// Меняет пакет, переносит возврат и повторяет поиск по новому интервалу
func (h *Handler) ChangePackage(w http.ResponseWriter, r *http.Request) {
	var req ChangePackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /filters/package - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	h.applyPackage(w, r, "PUT /filters/package", req.Package)
}

// Toggle POST /api/v1/filters/{category}/toggle
// Для duration работает как смена пакета
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	category := domain.FilterCategory(mux.Vars(r)["category"])
	route := "POST /filters/" + string(category) + "/toggle"

	var req ToggleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if category == domain.CategoryDuration {
		h.applyPackage(w, r, route, req.Value)
		return
	}

	var resp FiltersResponse
	err := h.sessions.Do(r.Context(), middleware.GetSessionID(r.Context()), func(s *sessions.Session) error {
		if err := s.Filters.Toggle(category, req.Value); err != nil {
			return err
		}
		resp = fromState(s.Filters.Snapshot())
		return nil
	})
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - %q toggled", route, req.Value)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) applyPackage(w http.ResponseWriter, r *http.Request, route, pkg string) {
	resp, err := h.changePackage.Execute(r.Context(), &change_package.Request{
		SessionID: middleware.GetSessionID(r.Context()),
		Package:   pkg,
	})
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	body := fromChangePackage(resp)
	if resp.SearchErr != nil {
		// Пакет уже применен: отдаем новый интервал и признак неудачного поиска
		h.logger.Error("%s - package %s applied, search failed: %v", route, resp.Package, resp.SearchErr)
		body.SearchError = msgSearchFailed
	}
	handlers.RespondJSON(w, http.StatusOK, body)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, change_package.ErrInvalidPackage), errors.Is(err, domain.ErrUnknownPackage):
		h.logger.Warn("%s - %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidPackage)
	case errors.Is(err, filterstate.ErrUnknownCategory):
		handlers.RespondBadRequest(w, msgUnknownCategory)
	case errors.Is(err, filterstate.ErrEmptyValue):
		handlers.RespondBadRequest(w, msgEmptyValue)
	case errors.Is(err, sessions.ErrInvalidSessionID):
		handlers.RespondBadRequest(w, msgInvalidSession)
	case errors.Is(err, change_package.ErrInternal):
		h.logger.Error("%s - %v", route, err)
		handlers.RespondInternalError(w)
	default:
		searchHandler.RespondError(w, h.logger, route, err)
	}
}
