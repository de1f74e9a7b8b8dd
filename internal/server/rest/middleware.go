package rest

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/webaplicationjsx/warehouse-backend/pkg/logger"
)

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()

		clientIP := getClientIP(r)
		endpoint := r.URL.Path
		httpMethod := r.Method

		// Bodies may carry passwords, so only their size is logged.
		logMessage := fmt.Sprintf(
			"Received request [ID: %s] from [ClientIP: %s] to [Endpoint: %s] with [HTTP Method: %s] and [Body Size: %d]",
			requestID, clientIP, endpoint, httpMethod, r.ContentLength,
		)
		logger.Info(logMessage)

		r = r.WithContext(context.WithValue(r.Context(), contextKeyReqID, requestID))

		next.ServeHTTP(w, r)
	})
}

func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		m := httpsnoop.CaptureMetrics(next, w, r)

		logger.Debug(fmt.Sprintf("Completed request [ID: %s] with [Status: %d] in [Duration: %s]", requestID(r), m.Code, m.Duration))

		s.metrics.ObserveRequest(route, r.Method, m.Code, m.Duration)
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(contextKeyReqID).(string)
	return id
}

func getClientIP(r *http.Request) string {
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.RemoteAddr
	}

	if commaIndex := strings.Index(ip, ","); commaIndex != -1 {
		ip = ip[:commaIndex]
	}
	ip = strings.TrimSpace(ip)

	if host, _, err := net.SplitHostPort(ip); err == nil {
		return host
	}
	return ip
}
