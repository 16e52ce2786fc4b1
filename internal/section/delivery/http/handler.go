package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/storekit/admin-backend/internal/httputil"
	"github.com/storekit/admin-backend/internal/middleware"
	"github.com/storekit/admin-backend/internal/section/domain"
	"github.com/storekit/admin-backend/internal/section/usecase/command"
	"github.com/storekit/admin-backend/internal/section/usecase/query"
	"github.com/storekit/admin-backend/pkg/logger"
)

// SectionHandler handles HTTP requests for sections
type SectionHandler struct {
	createHandler *command.CreateSectionHandler
	updateHandler *command.UpdateSectionHandler
	deleteHandler *command.DeleteSectionHandler
	getHandler    *query.GetSectionHandler
	listHandler   *query.ListSectionsHandler

	defaultPageSize int
	maxPageSize     int

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewSectionHandler creates a new section handler
func NewSectionHandler(repo domain.SectionRepository, defaultPageSize, maxPageSize int) *SectionHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_section_requests_total",
			Help: "Total number of requests to section endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)
	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admin_section_request_duration_seconds",
			Help:    "Duration of section requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &SectionHandler{
		createHandler: command.NewCreateSectionHandler(repo),
		updateHandler: command.NewUpdateSectionHandler(repo),
		deleteHandler: command.NewDeleteSectionHandler(repo),
		getHandler:    query.NewGetSectionHandler(repo),
		listHandler:   query.NewListSectionsHandler(repo),

		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,

		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *SectionHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers section routes on the router
func (h *SectionHandler) RegisterRoutes(router *mux.Router, admin middleware.Guard) {
	router.HandleFunc("/api/v1/sections", h.metricsMiddleware("/api/v1/sections", h.ListSections)).Methods("GET")
	router.HandleFunc("/api/v1/sections", h.metricsMiddleware("/api/v1/sections", admin(h.CreateSection))).Methods("POST")
	router.HandleFunc("/api/v1/sections/{id}", h.metricsMiddleware("/api/v1/sections/{id}", h.GetSection)).Methods("GET")
	router.HandleFunc("/api/v1/sections/{id}", h.metricsMiddleware("/api/v1/sections/{id}", admin(h.UpdateSection))).Methods("PUT")
	router.HandleFunc("/api/v1/sections/{id}", h.metricsMiddleware("/api/v1/sections/{id}", admin(h.DeleteSection))).Methods("DELETE")
}

type sectionRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Order           int    `json:"order"`
	IsActive        bool   `json:"is_active"`
	ParentSectionID string `json:"parent_section_id"`
}

type sectionUpdateRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Order           *int    `json:"order"`
	IsActive        *bool   `json:"is_active"`
	ParentSectionID *string `json:"parent_section_id"`
}

// ListSections handles GET /api/v1/sections
func (h *SectionHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	params, err := httputil.ParsePagination(r, h.defaultPageSize, h.maxPageSize)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var filters domain.SectionFilters
	if parent := r.URL.Query().Get("parent_id"); parent != "" {
		filters.ParentSectionID = &parent
	}

	resp, err := h.listHandler.Handle(r.Context(), query.ListSectionsQuery{Params: params, Filters: filters})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list sections")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}

// GetSection handles GET /api/v1/sections/{id}
func (h *SectionHandler) GetSection(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	section, err := h.getHandler.Handle(r.Context(), query.GetSectionQuery{ID: id})
	if err != nil {
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, section)
}

// CreateSection handles POST /api/v1/sections
func (h *SectionHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	// Absent is_active defaults to true, matching the admin UI contract
	req := sectionRequest{IsActive: true}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.CreateSectionCommand{
		Name:            req.Name,
		Description:     req.Description,
		Order:           req.Order,
		IsActive:        req.IsActive,
		ParentSectionID: req.ParentSectionID,
	}

	section, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create section")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, section)
}

// UpdateSection handles PUT /api/v1/sections/{id}
func (h *SectionHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req sectionUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateSectionCommand{ID: id, Update: domain.SectionUpdate{
		Name:            req.Name,
		Description:     req.Description,
		Order:           req.Order,
		IsActive:        req.IsActive,
		ParentSectionID: req.ParentSectionID,
	}}

	section, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update section")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, section)
}

// DeleteSection handles DELETE /api/v1/sections/{id}
func (h *SectionHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteSectionCommand{ID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete section")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, httputil.MessageResponse{Message: "Section deleted successfully", ID: id})
}
