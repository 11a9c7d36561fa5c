package filters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BikeRental/internal/api/middleware"
	sessionRepo "github.com/m04kA/SMC-BikeRental/internal/infra/storage/session"
	"github.com/m04kA/SMC-BikeRental/internal/service/sessions"
	"github.com/m04kA/SMC-BikeRental/internal/usecase/change_package"
	"github.com/m04kA/SMC-BikeRental/internal/usecase/search_bikes"
	"github.com/m04kA/SMC-BikeRental/pkg/logger"
)

const sid = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"

type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) Execute(ctx context.Context, req *search_bikes.Request) (*search_bikes.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*search_bikes.Response), args.Error(1)
}

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC) }

type noGauge struct{}

func (noGauge) SetActiveSessions(int) {}

func newRouter(t *testing.T, searcher *mockSearcher) (*mux.Router, *sessions.Registry) {
	t.Helper()
	log := logger.NewNop()
	reg := sessions.NewRegistry(sessionRepo.NewMemoryRepository(), fixedClock{}, time.UTC, time.Hour, noGauge{}, log)
	h := NewHandler(reg, change_package.NewUseCase(reg, searcher, log), log)

	r := mux.NewRouter()
	r.HandleFunc("/filters", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/filters/package", h.ChangePackage).Methods(http.MethodPut)
	r.HandleFunc("/filters/{category}/toggle", h.Toggle).Methods(http.MethodPost)
	return r, reg
}

func serve(r http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req = req.WithContext(middleware.WithSessionID(req.Context(), sid))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestToggle_ListCategories(t *testing.T) {
	r, _ := newRouter(t, &mockSearcher{})

	serve(r, http.MethodPost, "/filters/transmission/toggle", ToggleRequest{Value: "gear"})
	serve(r, http.MethodPost, "/filters/brand/toggle", ToggleRequest{Value: "Honda"})
	serve(r, http.MethodPost, "/filters/brand/toggle", ToggleRequest{Value: "Yamaha"})
	rec := serve(r, http.MethodPost, "/filters/brand/toggle", ToggleRequest{Value: "Honda"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(r, http.MethodGet, "/filters", nil)
	var resp FiltersResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "daily", resp.Package)
	assert.Equal(t, []string{"gear"}, resp.Transmission)
	assert.Equal(t, []string{"Yamaha"}, resp.Brand)
	assert.Empty(t, resp.Branch)
}

func TestToggle_Errors(t *testing.T) {
	r, _ := newRouter(t, &mockSearcher{})

	rec := serve(r, http.MethodPost, "/filters/color/toggle", ToggleRequest{Value: "red"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(r, http.MethodPost, "/filters/brand/toggle", ToggleRequest{Value: "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangePackage_WithoutCity(t *testing.T) {
	searcher := &mockSearcher{}
	r, _ := newRouter(t, searcher)

	rec := serve(r, http.MethodPut, "/filters/package", ChangePackageRequest{Package: "Weekly"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ChangePackageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "7days", resp.Package)
	assert.Equal(t, "2024-05-01T15:00:00Z", resp.PickupAt)
	assert.Equal(t, "2024-05-08T15:00:00Z", resp.DropoffAt)
	assert.Equal(t, 7, resp.Duration.Days)
	assert.Nil(t, resp.Search)
	searcher.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestChangePackage_SearchesWithNewWindow(t *testing.T) {
	searcher := &mockSearcher{}
	r, reg := newRouter(t, searcher)

	require.NoError(t, reg.Do(context.Background(), sid, func(s *sessions.Session) error {
		s.Search.UpdateCity("Dhaka")
		return nil
	}))

	searcher.On("Execute", mock.Anything, mock.MatchedBy(func(req *search_bikes.Request) bool {
		return req.Search.DropoffAt.Equal(time.Date(2024, 5, 16, 15, 0, 0, 0, time.UTC))
	})).Return(&search_bikes.Response{City: "Dhaka"}, nil)

	rec := serve(r, http.MethodPost, "/filters/duration/toggle", ToggleRequest{Value: "15 Days"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ChangePackageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "15days", resp.Package)
	require.NotNil(t, resp.Search)
	assert.Equal(t, "Dhaka", resp.Search.City)
	searcher.AssertExpectations(t)
}

func TestChangePackage_InvalidPackage(t *testing.T) {
	r, reg := newRouter(t, &mockSearcher{})

	for _, pkg := range []string{"fortnight", "30 days", "3 days"} {
		rec := serve(r, http.MethodPut, "/filters/package", ChangePackageRequest{Package: pkg})
		assert.Equal(t, http.StatusBadRequest, rec.Code, pkg)
	}
	rec := serve(r, http.MethodPost, "/filters/duration/toggle", ToggleRequest{Value: "365 days"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Интервал и пакет остаются прежними
	require.NoError(t, reg.Do(context.Background(), sid, func(s *sessions.Session) error {
		assert.Equal(t, "daily", string(s.Filters.Snapshot().Package))
		assert.Equal(t, time.Date(2024, 5, 2, 15, 0, 0, 0, time.UTC), s.Search.Snapshot().DropoffAt)
		return nil
	}))
}

func TestChangePackage_SearchFailureKeepsNewWindow(t *testing.T) {
	searcher := &mockSearcher{}
	r, reg := newRouter(t, searcher)

	require.NoError(t, reg.Do(context.Background(), sid, func(s *sessions.Session) error {
		s.Search.UpdateCity("Dhaka")
		return nil
	}))
	searcher.On("Execute", mock.Anything, mock.Anything).Return(nil, search_bikes.ErrUpstream)

	rec := serve(r, http.MethodPut, "/filters/package", ChangePackageRequest{Package: "monthly"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ChangePackageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "monthly", resp.Package)
	assert.Equal(t, "2024-05-31T15:00:00Z", resp.DropoffAt)
	assert.Equal(t, 30, resp.Duration.Days)
	assert.Nil(t, resp.Search)
	assert.Equal(t, "failed to load bikes", resp.SearchError)
}
