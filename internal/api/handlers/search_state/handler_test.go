package search_state

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BikeRental/internal/api/handlers"
	"github.com/m04kA/SMC-BikeRental/internal/api/middleware"
	sessionRepo "github.com/m04kA/SMC-BikeRental/internal/infra/storage/session"
	"github.com/m04kA/SMC-BikeRental/internal/service/sessions"
	"github.com/m04kA/SMC-BikeRental/pkg/logger"
)

const sid = "6c1f4d2e-8a3b-4c5d-9e7f-0a1b2c3d4e5f"

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type noGauge struct{}

func (noGauge) SetActiveSessions(int) {}

func newHandler(t *testing.T) *Handler {
	t.Helper()
	clock := &fixedClock{now: time.Date(2024, 5, 1, 14, 20, 0, 0, time.UTC)}
	reg := sessions.NewRegistry(sessionRepo.NewMemoryRepository(), clock, time.UTC, time.Hour, noGauge{}, logger.NewNop())
	return NewHandler(reg, time.UTC, logger.NewNop())
}

func request(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	return req.WithContext(middleware.WithSessionID(req.Context(), sid))
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) SearchStateResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp SearchStateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

func TestGet_Defaults(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	h.Get(rec, request(http.MethodGet, "/api/v1/search", nil))

	resp := decodeState(t, rec)
	assert.Equal(t, "Select City", resp.City)
	assert.False(t, resp.CitySelected)
	assert.Equal(t, "2024-05-01T15:00:00Z", resp.PickupAt)
	assert.Equal(t, "2024-05-02T15:00:00Z", resp.DropoffAt)
	assert.Equal(t, "3 PM", resp.PickupTime)
	assert.Equal(t, DurationResponse{Days: 1, Hours: 0}, resp.Duration)
}

func TestUpdateCity(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	h.UpdateCity(rec, request(http.MethodPut, "/api/v1/search/city", UpdateCityRequest{City: " Dhaka "}))
	resp := decodeState(t, rec)
	assert.Equal(t, "Dhaka", resp.City)
	assert.True(t, resp.CitySelected)

	rec = httptest.NewRecorder()
	h.UpdateCity(rec, request(http.MethodPut, "/api/v1/search/city", UpdateCityRequest{City: "Select City"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidCity, decodeError(t, rec))
}

func TestUpdatePickup_DateMovesDropoff(t *testing.T) {
	h := newHandler(t)
	date := "2024-05-03"

	rec := httptest.NewRecorder()
	h.UpdatePickup(rec, request(http.MethodPatch, "/api/v1/search/pickup", UpdateEndRequest{Date: &date}))

	resp := decodeState(t, rec)
	assert.Equal(t, "2024-05-03T15:00:00Z", resp.PickupAt)
	assert.Equal(t, "2024-05-04T15:00:00Z", resp.DropoffAt)
	assert.Equal(t, DurationResponse{Days: 1}, resp.Duration)
}

func TestUpdatePickup_TimeLabel(t *testing.T) {
	h := newHandler(t)
	label := "9 PM"

	rec := httptest.NewRecorder()
	h.UpdatePickup(rec, request(http.MethodPatch, "/api/v1/search/pickup", UpdateEndRequest{Time: &label}))

	resp := decodeState(t, rec)
	assert.Equal(t, "9 PM", resp.PickupTime)
	assert.Equal(t, "2024-05-02T21:00:00Z", resp.DropoffAt)
}

func TestUpdatePickup_RollsBackDateWhenTimeFails(t *testing.T) {
	h := newHandler(t)
	date := "2024-05-03"
	hour := 25

	rec := httptest.NewRecorder()
	h.UpdatePickup(rec, request(http.MethodPatch, "/api/v1/search/pickup", UpdateEndRequest{Date: &date, Hour: &hour}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidHour, decodeError(t, rec))

	rec = httptest.NewRecorder()
	h.Get(rec, request(http.MethodGet, "/api/v1/search", nil))
	resp := decodeState(t, rec)
	assert.Equal(t, "2024-05-01T15:00:00Z", resp.PickupAt)
	assert.Equal(t, "2024-05-02T15:00:00Z", resp.DropoffAt)
}

func TestUpdatePickup_Errors(t *testing.T) {
	past := "2024-04-30"
	bad := "01/05/2024"
	label := "noon"
	elapsed := 10

	tests := []struct {
		name    string
		body    UpdateEndRequest
		message string
	}{
		{name: "empty body", body: UpdateEndRequest{}, message: msgNothingToUpdate},
		{name: "past date", body: UpdateEndRequest{Date: &past}, message: msgDateDisabled},
		{name: "bad date", body: UpdateEndRequest{Date: &bad}, message: msgInvalidDate},
		{name: "bad label", body: UpdateEndRequest{Time: &label}, message: msgInvalidTime},
		{name: "elapsed hour", body: UpdateEndRequest{Hour: &elapsed}, message: msgSlotUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandler(t)
			rec := httptest.NewRecorder()
			h.UpdatePickup(rec, request(http.MethodPatch, "/api/v1/search/pickup", tt.body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, decodeError(t, rec))
		})
	}
}

func TestUpdateDropoff(t *testing.T) {
	h := newHandler(t)
	date := "2024-05-05"
	hour := 10

	rec := httptest.NewRecorder()
	h.UpdateDropoff(rec, request(http.MethodPatch, "/api/v1/search/dropoff", UpdateEndRequest{Date: &date, Hour: &hour}))
	resp := decodeState(t, rec)
	assert.Equal(t, "2024-05-01T15:00:00Z", resp.PickupAt)
	assert.Equal(t, "2024-05-05T10:00:00Z", resp.DropoffAt)
	assert.Equal(t, DurationResponse{Days: 3, Hours: 19}, resp.Duration)

	before := "2024-04-30"
	rec = httptest.NewRecorder()
	h.UpdateDropoff(rec, request(http.MethodPatch, "/api/v1/search/dropoff", UpdateEndRequest{Date: &before}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSlots(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	h.Slots(rec, request(http.MethodGet, "/api/v1/search/slots?side=pickup", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var slots []SlotResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&slots))
	require.Len(t, slots, 9)
	assert.Equal(t, SlotResponse{Label: "3 PM", Hour: 15}, slots[0])

	rec = httptest.NewRecorder()
	h.Slots(rec, request(http.MethodGet, "/api/v1/search/slots?side=return", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalendar(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	h.Calendar(rec, request(http.MethodGet, "/api/v1/search/calendar?side=pickup&from=2024-04-29&days=4", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var days []CalendarDayResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&days))
	assert.Equal(t, []CalendarDayResponse{
		{Date: "2024-04-29", Disabled: true},
		{Date: "2024-04-30", Disabled: true},
		{Date: "2024-05-01", Disabled: false},
		{Date: "2024-05-02", Disabled: false},
	}, days)

	rec = httptest.NewRecorder()
	h.Calendar(rec, request(http.MethodGet, "/api/v1/search/calendar?side=dropoff&days=x", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvalidSession(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
