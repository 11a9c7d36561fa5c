package search_bikes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BikeRental/internal/api/middleware"
	"github.com/m04kA/SMC-BikeRental/internal/domain"
	sessionRepo "github.com/m04kA/SMC-BikeRental/internal/infra/storage/session"
	"github.com/m04kA/SMC-BikeRental/internal/service/sessions"
	"github.com/m04kA/SMC-BikeRental/internal/usecase/search_bikes"
	"github.com/m04kA/SMC-BikeRental/pkg/logger"
)

const sid = "1d2e3f40-5a6b-4c7d-8e9f-a0b1c2d3e4f5"

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *search_bikes.Request) (*search_bikes.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*search_bikes.Response), args.Error(1)
}

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) }

type noGauge struct{}

func (noGauge) SetActiveSessions(int) {}

func newHandler(t *testing.T, uc UseCase) (*Handler, *sessions.Registry) {
	t.Helper()
	reg := sessions.NewRegistry(sessionRepo.NewMemoryRepository(), fixedClock{}, time.UTC, time.Hour, noGauge{}, logger.NewNop())
	return NewHandler(reg, uc, logger.NewNop()), reg
}

func searchRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bikes/search", nil)
	return req.WithContext(middleware.WithSessionID(req.Context(), sid))
}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{}
	h, reg := newHandler(t, uc)

	require.NoError(t, reg.Do(context.Background(), sid, func(s *sessions.Session) error {
		s.Search.UpdateCity("Dhaka")
		return s.Filters.Toggle(domain.CategoryBrand, "Yamaha")
	}))

	pickup := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	bike := domain.Bike{ID: 7, Name: "Yamaha FZ", Type: "gear", DayPrice: 1200, Limit: 120}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *search_bikes.Request) bool {
		return r.Search.City == "Dhaka" && len(r.Filters.Brand) == 1
	})).Return(&search_bikes.Response{
		City:    "Dhaka",
		Window:  domain.NewRentalWindow(pickup, pickup.Add(24*time.Hour)),
		Package: domain.PackageDaily,
		Found:   3,
		Bikes: []search_bikes.Listing{{
			Bike:      bike,
			ImageURL:  "https://cdn.example.com/fz.png",
			Locations: []domain.Location{{City: "Dhaka", Area: "Gulshan"}},
			Price:     bike.Quote(domain.PackageDaily),
			Packages:  []domain.PackagePrice{bike.Quote(domain.PackageDaily)},
		}},
	}, nil)

	rec := httptest.NewRecorder()
	h.Handle(rec, searchRequest())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Dhaka", resp.City)
	assert.Equal(t, "2024-05-01T10:00:00Z", resp.PickupAt)
	assert.Equal(t, 3, resp.Found)
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Bikes, 1)
	assert.Equal(t, "https://cdn.example.com/fz.png", resp.Bikes[0].Image)
	assert.Equal(t, 1200.0, resp.Bikes[0].Price.Total)
	assert.Equal(t, 120, resp.Bikes[0].Price.KmIncluded)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "no city", err: search_bikes.ErrCityNotSelected, status: http.StatusBadRequest},
		{name: "bad window", err: search_bikes.ErrInvalidWindow, status: http.StatusBadRequest},
		{name: "upstream", err: fmt.Errorf("%w: timeout", search_bikes.ErrUpstream), status: http.StatusBadGateway},
		{name: "unexpected", err: fmt.Errorf("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			h, _ := newHandler(t, uc)

			rec := httptest.NewRecorder()
			h.Handle(rec, searchRequest())
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
