package admin

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-BikeRental/internal/api/handlers"
	"github.com/m04kA/SMC-BikeRental/internal/api/handlers/catalog"
	"github.com/m04kA/SMC-BikeRental/pkg/validation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidID          = "invalid id"
)

// Handler прокси записи справочников в API проката.
// Права доступа проверяет само API
type Handler struct {
	client    RentalClient
	validator StructValidator
	logger    Logger
}

func NewHandler(client RentalClient, validator StructValidator, logger Logger) *Handler {
	return &Handler{
		client:    client,
		validator: validator,
		logger:    logger,
	}
}

// ListBikes GET /api/v1/admin/bikes
func (h *Handler) ListBikes(w http.ResponseWriter, r *http.Request) {
	bikes, err := h.client.ListBikes(r.Context())
	if err != nil {
		catalog.RespondError(w, h.logger, "GET /admin/bikes", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, bikes)
}

// CreateBike POST /api/v1/admin/bikes
func (h *Handler) CreateBike(w http.ResponseWriter, r *http.Request) {
	var req BikeRequest
	if !h.decode(w, r, "POST /admin/bikes", &req) {
		return
	}

	bike, err := h.client.CreateBike(r.Context(), req.toDomain())
	if err != nil {
		catalog.RespondError(w, h.logger, "POST /admin/bikes", err)
		return
	}

	h.logger.Info("POST /admin/bikes - Bike created: %s (%s, %s)", req.Name, req.City, req.Area)
	handlers.RespondJSON(w, http.StatusCreated, bike)
}

// UpdateBike PUT /api/v1/admin/bikes/{id}
func (h *Handler) UpdateBike(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req BikeRequest
	if !h.decode(w, r, "PUT /admin/bikes/{id}", &req) {
		return
	}

	bike, err := h.client.UpdateBike(r.Context(), id, req.toDomain())
	if err != nil {
		catalog.RespondError(w, h.logger, "PUT /admin/bikes/{id}", err)
		return
	}

	h.logger.Info("PUT /admin/bikes/{id} - Bike updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, bike)
}

// DeleteBike DELETE /api/v1/admin/bikes/{id}
func (h *Handler) DeleteBike(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "DELETE /admin/bikes/{id}", h.client.DeleteBike)
}

// CreateCity POST /api/v1/admin/cities
func (h *Handler) CreateCity(w http.ResponseWriter, r *http.Request) {
	var req CityRequest
	if !h.decode(w, r, "POST /admin/cities", &req) {
		return
	}

	city, err := h.client.CreateCity(r.Context(), req.toDomain())
	if err != nil {
		catalog.RespondError(w, h.logger, "POST /admin/cities", err)
		return
	}

	h.logger.Info("POST /admin/cities - City created: %s", req.Name)
	handlers.RespondJSON(w, http.StatusCreated, city)
}

// UpdateCity PUT /api/v1/admin/cities/{id}
func (h *Handler) UpdateCity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req CityRequest
	if !h.decode(w, r, "PUT /admin/cities/{id}", &req) {
		return
	}

	city, err := h.client.UpdateCity(r.Context(), id, req.toDomain())
	if err != nil {
		catalog.RespondError(w, h.logger, "PUT /admin/cities/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, city)
}

// DeleteCity DELETE /api/v1/admin/cities/{id}
func (h *Handler) DeleteCity(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "DELETE /admin/cities/{id}", h.client.DeleteCity)
}

// ListAreas GET /api/v1/admin/areas
func (h *Handler) ListAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.client.ListAreas(r.Context())
	if err != nil {
		catalog.RespondError(w, h.logger, "GET /admin/areas", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, areas)
}

// CreateArea POST /api/v1/admin/areas
func (h *Handler) CreateArea(w http.ResponseWriter, r *http.Request) {
	var req AreaRequest
	if !h.decode(w, r, "POST /admin/areas", &req) {
		return
	}

	area, err := h.client.CreateArea(r.Context(), req.toDomain())
	if err != nil {
		catalog.RespondError(w, h.logger, "POST /admin/areas", err)
		return
	}

	h.logger.Info("POST /admin/areas - Area created: %s (city_id=%d)", req.Name, req.CityID)
	handlers.RespondJSON(w, http.StatusCreated, area)
}

// DeleteArea DELETE /api/v1/admin/areas/{id}
func (h *Handler) DeleteArea(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "DELETE /admin/areas/{id}", h.client.DeleteArea)
}

// CreateOffer POST /api/v1/admin/offers
func (h *Handler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var req OfferRequest
	if !h.decode(w, r, "POST /admin/offers", &req) {
		return
	}

	offer, err := h.client.CreateOffer(r.Context(), req.toDomain())
	if err != nil {
		catalog.RespondError(w, h.logger, "POST /admin/offers", err)
		return
	}

	h.logger.Info("POST /admin/offers - Offer created: %s", req.Coupon)
	handlers.RespondJSON(w, http.StatusCreated, offer)
}

// UpdateOffer PUT /api/v1/admin/offers/{id}
func (h *Handler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req OfferRequest
	if !h.decode(w, r, "PUT /admin/offers/{id}", &req) {
		return
	}

	offer, err := h.client.UpdateOffer(r.Context(), id, req.toDomain())
	if err != nil {
		catalog.RespondError(w, h.logger, "PUT /admin/offers/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, offer)
}

// DeleteOffer DELETE /api/v1/admin/offers/{id}
func (h *Handler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "DELETE /admin/offers/{id}", h.client.DeleteOffer)
}

// decode читает и валидирует тело. При ошибке ответ уже записан
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, route string, req interface{}) bool {
	if err := handlers.DecodeJSON(r, req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return false
	}
	if err := h.validator.Struct(req); err != nil {
		if fields := validation.FieldErrors(err); fields != nil {
			handlers.RespondValidationError(w, fields)
			return false
		}
		h.logger.Error("%s - Validator failed: %v", route, err)
		handlers.RespondInternalError(w)
		return false
	}
	return true
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return 0, false
	}
	return id, true
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, route string, del func(ctx context.Context, id int64) error) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := del(r.Context(), id); err != nil {
		catalog.RespondError(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Deleted id=%d", route, id)
	handlers.RespondNoContent(w)
}
