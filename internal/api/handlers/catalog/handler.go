package catalog

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BikeRental/internal/api/handlers"
	"github.com/m04kA/SMC-BikeRental/internal/domain"
	"github.com/m04kA/SMC-BikeRental/internal/integrations/rentalapi"
)

const (
	msgInvalidID   = "invalid id"
	msgInvalidCity = "city name is required"
	msgNotFound    = "not found"
)

// Handler отдает справочники API проката с полными ссылками на картинки
type Handler struct {
	client       RentalClient
	imageBaseURL string
	logger       Logger
}

func NewHandler(client RentalClient, imageBaseURL string, logger Logger) *Handler {
	return &Handler{
		client:       client,
		imageBaseURL: imageBaseURL,
		logger:       logger,
	}
}

// Cities GET /api/v1/cities
func (h *Handler) Cities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.client.ListCities(r.Context())
	if err != nil {
		RespondError(w, h.logger, "GET /cities", err)
		return
	}
	for i := range cities {
		cities[i].Image = domain.ResolveImage(h.imageBaseURL, cities[i].Image)
	}
	handlers.RespondJSON(w, http.StatusOK, cities)
}

// Areas GET /api/v1/cities/{name}/areas
func (h *Handler) Areas(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(mux.Vars(r)["name"])
	if city == "" {
		handlers.RespondBadRequest(w, msgInvalidCity)
		return
	}

	areas, err := h.client.AreasByCity(r.Context(), city)
	if err != nil {
		RespondError(w, h.logger, "GET /cities/{name}/areas", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, areas)
}

// Offers GET /api/v1/offers
func (h *Handler) Offers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.client.ListOffers(r.Context())
	if err != nil {
		RespondError(w, h.logger, "GET /offers", err)
		return
	}
	for i := range offers {
		offers[i].Image = domain.ResolveImage(h.imageBaseURL, offers[i].Image)
	}
	handlers.RespondJSON(w, http.StatusOK, offers)
}

// Offer GET /api/v1/offers/{id}
func (h *Handler) Offer(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	offer, err := h.client.GetOffer(r.Context(), id)
	if err != nil {
		RespondError(w, h.logger, "GET /offers/{id}", err)
		return
	}
	offer.Image = domain.ResolveImage(h.imageBaseURL, offer.Image)
	handlers.RespondJSON(w, http.StatusOK, offer)
}

// Services GET /api/v1/services
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.client.ListServices(r.Context())
	if err != nil {
		RespondError(w, h.logger, "GET /services", err)
		return
	}
	for i := range services {
		services[i].Image = domain.ResolveImage(h.imageBaseURL, services[i].Image)
	}
	handlers.RespondJSON(w, http.StatusOK, services)
}

// Bike GET /api/v1/bikes/{id}
func (h *Handler) Bike(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	bike, err := h.client.GetBike(r.Context(), id)
	if err != nil {
		RespondError(w, h.logger, "GET /bikes/{id}", err)
		return
	}
	bike.Image = domain.ResolveImage(h.imageBaseURL, bike.Image)
	handlers.RespondJSON(w, http.StatusOK, bike)
}

// RespondError переводит ошибки клиента API проката в HTTP-ответ
func RespondError(w http.ResponseWriter, logger Logger, route string, err error) {
	switch {
	case errors.Is(err, rentalapi.ErrNotFound):
		handlers.RespondNotFound(w, msgNotFound)
	case errors.Is(err, rentalapi.ErrBadRequest):
		logger.Warn("%s - %v", route, err)
		handlers.RespondBadRequest(w, rejectedMessage(err))
	case errors.Is(err, rentalapi.ErrUnavailable), errors.Is(err, rentalapi.ErrInvalidResponse):
		logger.Error("%s - %v", route, err)
		handlers.RespondBadGateway(w)
	default:
		logger.Error("%s - Unexpected error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}

// rejectedMessage оставляет от ошибки только сообщение API: "<sentinel>: <endpoint>: <message>"
func rejectedMessage(err error) string {
	rest, ok := strings.CutPrefix(err.Error(), rentalapi.ErrBadRequest.Error()+": ")
	if !ok {
		return rentalapi.ErrBadRequest.Error()
	}
	if parts := strings.SplitN(rest, ": ", 2); len(parts) == 2 && parts[1] != "" {
		return parts[1]
	}
	return rest
}
