package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetClientIP(t *testing.T) {
	data := []struct {
		name       string
		remoteAddr string
		forwarded  string
		expected   string
	}{
		{"remote ipv4", "192.168.1.10:52100", "", "192.168.1.10"},
		{"remote ipv6", "[::1]:52100", "", "::1"},
		{"forwarded single", "10.0.0.1:80", "203.0.113.7", "203.0.113.7"},
		{"forwarded chain", "10.0.0.1:80", "203.0.113.7, 10.0.0.2", "203.0.113.7"},
		{"forwarded ipv6", "10.0.0.1:80", "2001:db8::1", "2001:db8::1"},
	}

	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = d.remoteAddr
			if d.forwarded != "" {
				r.Header.Set("X-Forwarded-For", d.forwarded)
			}

			assert.Equal(t, d.expected, getClientIP(r))
		})
	}
}

func TestLogMiddlewareSetsRequestID(t *testing.T) {
	s := &Server{}

	var seen string
	handler := s.logMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestID(r)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, seen, 36)
}
