package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BikeRental/internal/api/handlers"
	"github.com/m04kA/SMC-BikeRental/internal/domain"
	"github.com/m04kA/SMC-BikeRental/internal/integrations/rentalapi"
	"github.com/m04kA/SMC-BikeRental/pkg/logger"
	"github.com/m04kA/SMC-BikeRental/pkg/validation"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) ListBikes(ctx context.Context) ([]domain.Bike, error) {
	args := m.Called(ctx)
	bikes, _ := args.Get(0).([]domain.Bike)
	return bikes, args.Error(1)
}

func (m *mockClient) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	args := m.Called(ctx, bike)
	out, _ := args.Get(0).(*domain.Bike)
	return out, args.Error(1)
}

func (m *mockClient) UpdateBike(ctx context.Context, id int64, bike *domain.Bike) (*domain.Bike, error) {
	args := m.Called(ctx, id, bike)
	out, _ := args.Get(0).(*domain.Bike)
	return out, args.Error(1)
}

func (m *mockClient) DeleteBike(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockClient) CreateCity(ctx context.Context, city *domain.City) (*domain.City, error) {
	args := m.Called(ctx, city)
	out, _ := args.Get(0).(*domain.City)
	return out, args.Error(1)
}

func (m *mockClient) UpdateCity(ctx context.Context, id int64, city *domain.City) (*domain.City, error) {
	args := m.Called(ctx, id, city)
	out, _ := args.Get(0).(*domain.City)
	return out, args.Error(1)
}

func (m *mockClient) DeleteCity(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockClient) ListAreas(ctx context.Context) ([]domain.Area, error) {
	args := m.Called(ctx)
	areas, _ := args.Get(0).([]domain.Area)
	return areas, args.Error(1)
}

func (m *mockClient) CreateArea(ctx context.Context, area *domain.Area) (*domain.Area, error) {
	args := m.Called(ctx, area)
	out, _ := args.Get(0).(*domain.Area)
	return out, args.Error(1)
}

func (m *mockClient) DeleteArea(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockClient) CreateOffer(ctx context.Context, offer *domain.Offer) (*domain.Offer, error) {
	args := m.Called(ctx, offer)
	out, _ := args.Get(0).(*domain.Offer)
	return out, args.Error(1)
}

func (m *mockClient) UpdateOffer(ctx context.Context, id int64, offer *domain.Offer) (*domain.Offer, error) {
	args := m.Called(ctx, id, offer)
	out, _ := args.Get(0).(*domain.Offer)
	return out, args.Error(1)
}

func (m *mockClient) DeleteOffer(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newRouter(client RentalClient) *mux.Router {
	h := NewHandler(client, validation.New(), logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/admin/bikes", h.CreateBike).Methods(http.MethodPost)
	r.HandleFunc("/admin/bikes/{id}", h.UpdateBike).Methods(http.MethodPut)
	r.HandleFunc("/admin/bikes/{id}", h.DeleteBike).Methods(http.MethodDelete)
	r.HandleFunc("/admin/areas", h.CreateArea).Methods(http.MethodPost)
	r.HandleFunc("/admin/offers", h.CreateOffer).Methods(http.MethodPost)
	return r
}

func serve(r http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, &buf))
	return rec
}

func validBike() BikeRequest {
	return BikeRequest{
		Name:     "Yamaha FZ",
		Type:     "gear",
		Seat:     2,
		City:     "Dhaka",
		Area:     "Gulshan",
		DayPrice: 1200,
		MakeYear: 2022,
	}
}

func TestCreateBike(t *testing.T) {
	client := &mockClient{}
	client.On("CreateBike", mock.Anything, mock.MatchedBy(func(b *domain.Bike) bool {
		return b.Name == "Yamaha FZ" && b.DayPrice == 1200
	})).Return(&domain.Bike{ID: 10, Name: "Yamaha FZ"}, nil)

	rec := serve(newRouter(client), http.MethodPost, "/admin/bikes", validBike())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var bike domain.Bike
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&bike))
	assert.Equal(t, int64(10), bike.ID)
	client.AssertExpectations(t)
}

func TestCreateBike_Validation(t *testing.T) {
	req := validBike()
	req.Name = ""
	req.DayPrice = 0

	rec := serve(newRouter(&mockClient{}), http.MethodPost, "/admin/bikes", req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "is required", resp.Fields["name"])
	assert.Equal(t, "must be greater than 0", resp.Fields["day_price"])
}

func TestUpdateBike_NotFound(t *testing.T) {
	client := &mockClient{}
	client.On("UpdateBike", mock.Anything, int64(5), mock.Anything).
		Return(nil, fmt.Errorf("%w: PUT /bike/5", rentalapi.ErrNotFound))

	rec := serve(newRouter(client), http.MethodPut, "/admin/bikes/5", validBike())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteBike(t *testing.T) {
	client := &mockClient{}
	client.On("DeleteBike", mock.Anything, int64(5)).Return(nil)

	rec := serve(newRouter(client), http.MethodDelete, "/admin/bikes/5", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(newRouter(client), http.MethodDelete, "/admin/bikes/0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	client.AssertNumberOfCalls(t, "DeleteBike", 1)
}

func TestCreateArea_RequiresCity(t *testing.T) {
	rec := serve(newRouter(&mockClient{}), http.MethodPost, "/admin/areas", AreaRequest{Name: "Banani"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp.Fields, "city_id")
}

func TestCreateOffer_RejectedByAPI(t *testing.T) {
	client := &mockClient{}
	client.On("CreateOffer", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: create_offer: coupon already exists", rentalapi.ErrBadRequest))

	rec := serve(newRouter(client), http.MethodPost, "/admin/offers", OfferRequest{
		Title:        "Eid",
		Coupon:       "EID24",
		CouponExpiry: "2024-06-30",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "coupon already exists", resp.Error)
}
