package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest("/api/schedule", http.MethodGet, http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest("/api/schedule", http.MethodGet, http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest("/api/schedule", http.MethodPost, http.StatusBadRequest, time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/schedule", http.MethodGet, "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/schedule", http.MethodPost, "400")))
}

func TestObserveStoreError(t *testing.T) {
	m := New()

	m.ObserveStoreError("/api/users")

	require.Equal(t, 1.0, testutil.ToFloat64(m.storeErrors.WithLabelValues("/api/users")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveRequest("/", http.MethodGet, http.StatusOK, time.Millisecond)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `warehouse_http_requests_total{method="GET",route="/",status="200"} 1`)
	require.Contains(t, rr.Body.String(), "go_goroutines")
}
