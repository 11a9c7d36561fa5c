package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BikeRental/pkg/logger"
)

func TestSession_IssuesCookie(t *testing.T) {
	var seen string
	h := Session(SessionConfig{CookieName: "sid", TTL: time.Hour})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetSessionID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.Equal(t, seen, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotEmpty(t, seen)
}

func TestSession_KeepsValidCookie(t *testing.T) {
	const id = "3f2c1b0a-9e8d-4c7b-a6f5-e4d3c2b1a098"

	var seen string
	h := Session(SessionConfig{CookieName: "sid", TTL: time.Hour})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetSessionID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: id})
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, id, seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "forged"})
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.NotEqual(t, "forged", seen)
}

type httpSpy struct {
	route  string
	status int
}

func (s *httpSpy) ObserveHTTP(_, route string, status int, _ time.Duration) {
	s.route = route
	s.status = status
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	spy := &httpSpy{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(spy))
	r.HandleFunc("/bikes/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bikes/42", nil))
	assert.Equal(t, "/bikes/{id}", spy.route)
	assert.Equal(t, http.StatusTeapot, spy.status)
}

func TestRecover(t *testing.T) {
	h := Recover(logger.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
