package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/webaplicationjsx/warehouse-backend/internal/dto"
	"github.com/webaplicationjsx/warehouse-backend/internal/metrics"
	"github.com/webaplicationjsx/warehouse-backend/internal/model"
	"github.com/webaplicationjsx/warehouse-backend/internal/service"
	"github.com/webaplicationjsx/warehouse-backend/pkg/crypto"
	"github.com/webaplicationjsx/warehouse-backend/pkg/logger"
	"github.com/webaplicationjsx/warehouse-backend/pkg/validation"
)

type contextKey string

const (
	// DefaultAddress is the default address the server listens on.
	DefaultAddress = ":5000"
	// DefaultWriteTimeout is the default write timeout for server responses.
	DefaultWriteTimeout = 15 * time.Second
	// DefaultReadTimeout is the default read timeout for incoming requests.
	DefaultReadTimeout = 15 * time.Second

	contextKeyReqID = contextKey("reqID")

	// LivenessMessage is the plain text body served on the root path.
	LivenessMessage = "Warehouse Backend is running"

	// ErrMsgBadRequestInvalidRequestBody is a http response body message for bad request status code.
	ErrMsgBadRequestInvalidRequestBody = "Invalid request body"
	// ErrMsgMissingData is a http response body message for a record payload without data.
	ErrMsgMissingData = "Missing 'data' in request body"
	// ErrMsgInternalServerError is a http response body message for internal server error status code.
	ErrMsgInternalServerError = "Internal server error"
)

// Server represents the warehouse REST API server.
type Server struct {
	*http.Server
	userService   service.UserService
	recordService service.RecordService
	metrics       *metrics.Metrics
}

// NewServer creates a new Server instance.
func NewServer(userService service.UserService, recordService service.RecordService, opts ...ServerOption) *Server {
	server := &Server{
		Server: &http.Server{
			Addr:         DefaultAddress,
			WriteTimeout: DefaultWriteTimeout,
			ReadTimeout:  DefaultReadTimeout,
		},
		userService:   userService,
		recordService: recordService,
	}

	for _, opt := range opts {
		opt(server)
	}

	if server.metrics == nil {
		server.metrics = metrics.New()
	}

	server.initRoutes()

	return server
}

// ServerOption is a function signature for providing options to configure the Server.
type ServerOption func(*Server)

// WithAddress is an option to set the server address.
func WithAddress(addr string) ServerOption {
	return func(s *Server) {
		s.Addr = addr
	}
}

// WithReadTimeout is an option to set the read timeout for the server.
func WithReadTimeout(timeout time.Duration) ServerOption {
	return func(s *Server) {
		s.ReadTimeout = timeout
	}
}

// WithWriteTimeout is an option to set the write timeout for the server.
func WithWriteTimeout(timeout time.Duration) ServerOption {
	return func(s *Server) {
		s.WriteTimeout = timeout
	}
}

// WithMetrics is an option to set the collectors the server reports to.
func WithMetrics(m *metrics.Metrics) ServerOption {
	return func(s *Server) {
		s.metrics = m
	}
}

func (s *Server) initRoutes() {
	r := mux.NewRouter()

	r.Use(s.logMiddleware)
	r.Use(s.metricsMiddleware)

	r.HandleFunc("/", s.handleLiveness).Methods("GET")

	r.HandleFunc("/api/users", s.handleGetUsers).Methods("GET")
	r.HandleFunc("/api/users", s.handleAddUser).Methods("POST")

	r.HandleFunc("/api/schedule", s.handleGetRecords(model.CategorySchedule)).Methods("GET")
	r.HandleFunc("/api/schedule", s.handleAddRecord(model.CategorySchedule)).Methods("POST")

	r.HandleFunc("/api/shipment", s.handleGetRecords(model.CategoryShipment)).Methods("GET")
	r.HandleFunc("/api/shipment", s.handleAddRecord(model.CategoryShipment)).Methods("POST")

	r.HandleFunc("/api/miscellaneous", s.handleGetRecords(model.CategoryMiscellaneous)).Methods("GET")
	r.HandleFunc("/api/miscellaneous/save", s.handleSaveRecord(model.CategoryMiscellaneous)).Methods("POST")

	r.Handle("/metrics", s.metrics.Handler()).Methods("GET")

	s.Handler = cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler(r)
}

func (s *Server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(LivenessMessage)); err != nil {
		logger.Error(fmt.Sprintf("Failed to respond: %s", err))
	}
}

func (s *Server) handleGetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.userService.GetAllUsers(r.Context())
	if err != nil {
		s.respondWithStoreError(w, r, "Failed to fetch users", err)
		return
	}

	s.respondWithJSON(w, http.StatusOK, users)
}

func (s *Server) handleAddUser(w http.ResponseWriter, r *http.Request) {
	userCreateDTO := &dto.UserCreateDTO{}
	if err := decodeBody(r, userCreateDTO); err != nil {
		s.respondWithError(w, http.StatusBadRequest, ErrMsgBadRequestInvalidRequestBody)
		return
	}

	if err := s.userService.AddUser(r.Context(), userCreateDTO); err != nil {
		switch {
		case errors.Is(err, validation.ErrMissingField), errors.Is(err, crypto.ErrPasswordTooLong):
			s.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("%s:%s", ErrMsgBadRequestInvalidRequestBody, err))
		default:
			s.respondWithStoreError(w, r, "Failed to add user", err)
		}
		return
	}

	s.respondWithJSON(w, http.StatusOK, dto.SuccessDTO{Success: true})
}

func (s *Server) handleGetRecords(category model.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := s.recordService.GetAllRecords(r.Context(), category)
		if err != nil {
			s.respondWithStoreError(w, r, fmt.Sprintf("Failed to fetch %s", category), err)
			return
		}

		s.respondWithJSON(w, http.StatusOK, records)
	}
}

// handleAddRecord responds with the stored row.
func (s *Server) handleAddRecord(category model.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := s.addRecord(w, r, category, fmt.Sprintf("Failed to add %s", category))
		if !ok {
			return
		}

		s.respondWithJSON(w, http.StatusOK, record)
	}
}

// handleSaveRecord responds with a bare acknowledgement.
func (s *Server) handleSaveRecord(category model.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.addRecord(w, r, category, fmt.Sprintf("Failed to save %s", category)); !ok {
			return
		}

		s.respondWithJSON(w, http.StatusOK, dto.SuccessDTO{Success: true})
	}
}

func (s *Server) addRecord(w http.ResponseWriter, r *http.Request, category model.Category, failMsg string) (*dto.RecordDTO, bool) {
	recordCreateDTO := &dto.RecordCreateDTO{}
	if err := decodeBody(r, recordCreateDTO); err != nil {
		s.respondWithError(w, http.StatusBadRequest, ErrMsgBadRequestInvalidRequestBody)
		return nil, false
	}

	record, err := s.recordService.AddRecord(r.Context(), category, recordCreateDTO)
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrMissingData):
			s.respondWithError(w, http.StatusBadRequest, ErrMsgMissingData)
		default:
			s.respondWithStoreError(w, r, failMsg, err)
		}
		return nil, false
	}

	return record, true
}

// decodeBody treats an empty body as an empty JSON object.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (s *Server) respondWithStoreError(w http.ResponseWriter, r *http.Request, errMessage string, err error) {
	logger.Error(fmt.Sprintf("[ID: %s] %s: %s", requestID(r), errMessage, err))

	if route := mux.CurrentRoute(r); route != nil {
		if tpl, tplErr := route.GetPathTemplate(); tplErr == nil {
			s.metrics.ObserveStoreError(tpl)
		}
	}

	s.respondWithError(w, http.StatusInternalServerError, errMessage)
}

func (s *Server) respondWithError(w http.ResponseWriter, errCode int, errMessage string) {
	s.respondWithJSON(w, errCode, dto.ErrorDTO{Error: errMessage})
}

func (s *Server) respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to marshall response to JSON: %s ", err))

		w.WriteHeader(http.StatusInternalServerError)
		if _, err := w.Write([]byte(ErrMsgInternalServerError)); err != nil {
			logger.Error(fmt.Sprintf("Failed to respond: %s", err))
		}

		return
	}

	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		logger.Error(fmt.Sprintf("Failed to respond: %s", err))
	}
}
