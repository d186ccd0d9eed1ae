package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestBegin_TracksInFlight(t *testing.T) {
	m := New()

	done := m.Begin()
	assert.Contains(t, scrape(t, m), "salon_api_http_requests_in_flight 1")

	done(http.MethodGet, "/api/clients/:id", http.StatusNotFound)
	body := scrape(t, m)

	assert.Contains(t, body, "salon_api_http_requests_in_flight 0")
	assert.Contains(t, body, `salon_api_http_requests_total{method="GET",route="/api/clients/:id",status="404"} 1`)
}

func TestHandler_Exposition(t *testing.T) {
	m := New()
	m.Begin()(http.MethodPost, "/api/services", http.StatusCreated)
	m.Begin()(http.MethodPost, "/api/services", http.StatusCreated)

	body := scrape(t, m)

	assert.Contains(t, body, `salon_api_http_requests_total{method="POST",route="/api/services",status="201"} 2`)
	assert.Contains(t, body, `salon_api_http_request_duration_seconds_count{method="POST",route="/api/services"} 2`)
	assert.Contains(t, body, "go_goroutines")
}
