package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/storekit/admin-backend/internal/category/domain"
	"github.com/storekit/admin-backend/internal/category/usecase/command"
	"github.com/storekit/admin-backend/internal/category/usecase/query"
	"github.com/storekit/admin-backend/internal/httputil"
	"github.com/storekit/admin-backend/internal/middleware"
	"github.com/storekit/admin-backend/pkg/logger"
)

// CategoryHandler handles HTTP requests for categories
type CategoryHandler struct {
	createHandler *command.CreateCategoryHandler
	updateHandler *command.UpdateCategoryHandler
	deleteHandler *command.DeleteCategoryHandler
	getHandler    *query.GetCategoryHandler
	listHandler   *query.ListCategoriesHandler

	defaultPageSize int
	maxPageSize     int

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(repo domain.CategoryRepository, defaultPageSize, maxPageSize int) *CategoryHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_category_requests_total",
			Help: "Total number of requests to category endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)
	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admin_category_request_duration_seconds",
			Help:    "Duration of category requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &CategoryHandler{
		createHandler: command.NewCreateCategoryHandler(repo),
		updateHandler: command.NewUpdateCategoryHandler(repo),
		deleteHandler: command.NewDeleteCategoryHandler(repo),
		getHandler:    query.NewGetCategoryHandler(repo),
		listHandler:   query.NewListCategoriesHandler(repo),

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
func (h *CategoryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers category routes on the router
func (h *CategoryHandler) RegisterRoutes(router *mux.Router, admin middleware.Guard) {
	router.HandleFunc("/api/v1/categories", h.metricsMiddleware("/api/v1/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/v1/categories", h.metricsMiddleware("/api/v1/categories", admin(h.CreateCategory))).Methods("POST")
	router.HandleFunc("/api/v1/categories/{id}", h.metricsMiddleware("/api/v1/categories/{id}", h.GetCategory)).Methods("GET")
	router.HandleFunc("/api/v1/categories/{id}", h.metricsMiddleware("/api/v1/categories/{id}", admin(h.UpdateCategory))).Methods("PUT")
	router.HandleFunc("/api/v1/categories/{id}", h.metricsMiddleware("/api/v1/categories/{id}", admin(h.DeleteCategory))).Methods("DELETE")
}

type categoryRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	SectionID        string `json:"section_id"`
	ParentCategoryID string `json:"parent_category_id"`
	IsActive         bool   `json:"is_active"`
	Order            int    `json:"order"`
	Slug             string `json:"slug"`
	ImageURL         string `json:"image_url"`
}

type categoryUpdateRequest struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	SectionID        *string `json:"section_id"`
	ParentCategoryID *string `json:"parent_category_id"`
	IsActive         *bool   `json:"is_active"`
	Order            *int    `json:"order"`
	Slug             *string `json:"slug"`
	ImageURL         *string `json:"image_url"`
}

// ListCategories handles GET /api/v1/categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	params, err := httputil.ParsePagination(r, h.defaultPageSize, h.maxPageSize)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var filters domain.CategoryFilters
	if parent := r.URL.Query().Get("parent_id"); parent != "" {
		filters.ParentCategoryID = &parent
	}

	resp, err := h.listHandler.Handle(r.Context(), query.ListCategoriesQuery{Params: params, Filters: filters})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list categories")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}

// GetCategory handles GET /api/v1/categories/{id}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	category, err := h.getHandler.Handle(r.Context(), query.GetCategoryQuery{ID: id})
	if err != nil {
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, category)
}

// CreateCategory handles POST /api/v1/categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	req := categoryRequest{IsActive: true}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.CreateCategoryCommand{
		Name:             req.Name,
		Description:      req.Description,
		SectionID:        req.SectionID,
		ParentCategoryID: req.ParentCategoryID,
		IsActive:         req.IsActive,
		Order:            req.Order,
		Slug:             req.Slug,
		ImageURL:         req.ImageURL,
	}

	category, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create category")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, category)
}

// UpdateCategory handles PUT /api/v1/categories/{id}
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req categoryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateCategoryCommand{ID: id, Update: domain.CategoryUpdate{
		Name:             req.Name,
		Description:      req.Description,
		SectionID:        req.SectionID,
		ParentCategoryID: req.ParentCategoryID,
		IsActive:         req.IsActive,
		Order:            req.Order,
		Slug:             req.Slug,
		ImageURL:         req.ImageURL,
	}}

	category, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update category")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/v1/categories/{id}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteCategoryCommand{ID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete category")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, httputil.MessageResponse{Message: "Category deleted successfully", ID: id})
}
