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
	"github.com/storekit/admin-backend/internal/product/domain"
	"github.com/storekit/admin-backend/internal/product/usecase/command"
	"github.com/storekit/admin-backend/internal/product/usecase/query"
	"github.com/storekit/admin-backend/pkg/logger"
)

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	createHandler *command.CreateProductHandler
	updateHandler *command.UpdateProductHandler
	deleteHandler *command.DeleteProductHandler
	getHandler    *query.GetProductHandler
	listHandler   *query.ListProductsHandler
	searchHandler *query.SearchProductsHandler

	defaultPageSize int
	maxPageSize     int

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewProductHandler creates a new product handler
func NewProductHandler(repo domain.ProductRepository, defaultPageSize, maxPageSize int) *ProductHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_product_requests_total",
			Help: "Total number of requests to product endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)
	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admin_product_request_duration_seconds",
			Help:    "Duration of product requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &ProductHandler{
		createHandler: command.NewCreateProductHandler(repo),
		updateHandler: command.NewUpdateProductHandler(repo),
		deleteHandler: command.NewDeleteProductHandler(repo),
		getHandler:    query.NewGetProductHandler(repo),
		listHandler:   query.NewListProductsHandler(repo),
		searchHandler: query.NewSearchProductsHandler(repo),

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
func (h *ProductHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers product routes on the router. The search route
// is registered before the {id} route so "search" never binds as an id.
func (h *ProductHandler) RegisterRoutes(router *mux.Router, admin middleware.Guard) {
	router.HandleFunc("/api/v1/products", h.metricsMiddleware("/api/v1/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/v1/products", h.metricsMiddleware("/api/v1/products", admin(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/api/v1/products/search", h.metricsMiddleware("/api/v1/products/search", h.SearchProducts)).Methods("GET")
	router.HandleFunc("/api/v1/products/{id}", h.metricsMiddleware("/api/v1/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/v1/products/{id}", h.metricsMiddleware("/api/v1/products/{id}", admin(h.UpdateProduct))).Methods("PUT")
	router.HandleFunc("/api/v1/products/{id}", h.metricsMiddleware("/api/v1/products/{id}", admin(h.DeleteProduct))).Methods("DELETE")
}

type productRequest struct {
	Name               string                 `json:"name"`
	Description        string                 `json:"description"`
	Price              float64                `json:"price"`
	CompareAtPrice     float64                `json:"compare_at_price"`
	Cost               float64                `json:"cost"`
	CategoryID         string                 `json:"category_id"`
	SectionID          string                 `json:"section_id"`
	SKU                string                 `json:"sku"`
	InventoryQuantity  int                    `json:"inventory_quantity"`
	ImageURL           string                 `json:"image_url"`
	IsActive           bool                   `json:"is_active"`
	Featured           bool                   `json:"featured"`
	DiscountPercentage float64                `json:"discount_percentage"`
	Attributes         map[string]interface{} `json:"attributes"`
	Slug               string                 `json:"slug"`
}

type productUpdateRequest struct {
	Name               *string                `json:"name"`
	Description        *string                `json:"description"`
	Price              *float64               `json:"price"`
	CompareAtPrice     *float64               `json:"compare_at_price"`
	Cost               *float64               `json:"cost"`
	CategoryID         *string                `json:"category_id"`
	SectionID          *string                `json:"section_id"`
	SKU                *string                `json:"sku"`
	InventoryQuantity  *int                   `json:"inventory_quantity"`
	ImageURL           *string                `json:"image_url"`
	IsActive           *bool                  `json:"is_active"`
	Featured           *bool                  `json:"featured"`
	DiscountPercentage *float64               `json:"discount_percentage"`
	Attributes         map[string]interface{} `json:"attributes"`
	Slug               *string                `json:"slug"`
}

// ListProducts handles GET /api/v1/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params, err := httputil.ParsePagination(r, h.defaultPageSize, h.maxPageSize)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var filters domain.ProductFilters
	q := r.URL.Query()
	if v := q.Get("category_id"); v != "" {
		filters.CategoryID = &v
	}
	if v := q.Get("section_id"); v != "" {
		filters.SectionID = &v
	}
	if v := q.Get("is_active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "is_active must be a boolean")
			return
		}
		filters.IsActive = &active
	}
	if v := q.Get("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "featured must be a boolean")
			return
		}
		filters.Featured = &featured
	}

	resp, err := h.listHandler.Handle(r.Context(), query.ListProductsQuery{Params: params, Filters: filters})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list products")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}

// SearchProducts handles GET /api/v1/products/search
func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			httputil.RespondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	products, err := h.searchHandler.Handle(r.Context(), query.SearchProductsQuery{
		Query: r.URL.Query().Get("q"),
		Limit: limit,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to search products")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.getHandler.Handle(r.Context(), query.GetProductQuery{ID: id})
	if err != nil {
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, product)
}

// CreateProduct handles POST /api/v1/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	req := productRequest{IsActive: true}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.CreateProductCommand{Product: domain.ProductCreate{
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		CompareAtPrice:     req.CompareAtPrice,
		Cost:               req.Cost,
		CategoryID:         req.CategoryID,
		SectionID:          req.SectionID,
		SKU:                req.SKU,
		InventoryQuantity:  req.InventoryQuantity,
		ImageURL:           req.ImageURL,
		IsActive:           req.IsActive,
		Featured:           req.Featured,
		DiscountPercentage: req.DiscountPercentage,
		Attributes:         req.Attributes,
		Slug:               req.Slug,
	}}

	product, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create product")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/v1/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req productUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateProductCommand{ID: id, Update: domain.ProductUpdate{
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		CompareAtPrice:     req.CompareAtPrice,
		Cost:               req.Cost,
		CategoryID:         req.CategoryID,
		SectionID:          req.SectionID,
		SKU:                req.SKU,
		InventoryQuantity:  req.InventoryQuantity,
		ImageURL:           req.ImageURL,
		IsActive:           req.IsActive,
		Featured:           req.Featured,
		DiscountPercentage: req.DiscountPercentage,
		Attributes:         req.Attributes,
		Slug:               req.Slug,
	}}

	product, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update product")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/v1/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteProductCommand{ID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete product")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, httputil.MessageResponse{Message: "Product deleted successfully", ID: id})
}
