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
	"github.com/storekit/admin-backend/internal/order/domain"
	"github.com/storekit/admin-backend/internal/order/usecase/command"
	"github.com/storekit/admin-backend/internal/order/usecase/query"
	"github.com/storekit/admin-backend/pkg/logger"
)

// OrderHandler handles HTTP requests for orders
type OrderHandler struct {
	createHandler      *command.CreateOrderHandler
	updateHandler      *command.UpdateOrderHandler
	deleteHandler      *command.DeleteOrderHandler
	getHandler         *query.GetOrderHandler
	getByNumberHandler *query.GetOrderByNumberHandler
	listHandler        *query.ListOrdersHandler
	statisticsHandler  *query.OrderStatisticsHandler

	defaultPageSize int
	maxPageSize     int

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(repo domain.OrderRepository, publisher command.EventPublisher, defaultPageSize, maxPageSize int) *OrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_order_requests_total",
			Help: "Total number of requests to order endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)
	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admin_order_request_duration_seconds",
			Help:    "Duration of order requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &OrderHandler{
		createHandler:      command.NewCreateOrderHandler(repo, publisher),
		updateHandler:      command.NewUpdateOrderHandler(repo, publisher),
		deleteHandler:      command.NewDeleteOrderHandler(repo),
		getHandler:         query.NewGetOrderHandler(repo),
		getByNumberHandler: query.NewGetOrderByNumberHandler(repo),
		listHandler:        query.NewListOrdersHandler(repo),
		statisticsHandler:  query.NewOrderStatisticsHandler(repo),

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
func (h *OrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers order routes on the router. The statistics and
// number routes precede the {id} route so their literal segments never bind
// as an id.
func (h *OrderHandler) RegisterRoutes(router *mux.Router, admin middleware.Guard) {
	router.HandleFunc("/api/v1/orders", h.metricsMiddleware("/api/v1/orders", admin(h.ListOrders))).Methods("GET")
	router.HandleFunc("/api/v1/orders", h.metricsMiddleware("/api/v1/orders", h.CreateOrder)).Methods("POST")
	router.HandleFunc("/api/v1/orders/statistics", h.metricsMiddleware("/api/v1/orders/statistics", admin(h.GetStatistics))).Methods("GET")
	router.HandleFunc("/api/v1/orders/number/{orderNumber}", h.metricsMiddleware("/api/v1/orders/number/{orderNumber}", h.GetOrderByNumber)).Methods("GET")
	router.HandleFunc("/api/v1/orders/{id}", h.metricsMiddleware("/api/v1/orders/{id}", admin(h.GetOrder))).Methods("GET")
	router.HandleFunc("/api/v1/orders/{id}", h.metricsMiddleware("/api/v1/orders/{id}", admin(h.UpdateOrder))).Methods("PUT")
	router.HandleFunc("/api/v1/orders/{id}", h.metricsMiddleware("/api/v1/orders/{id}", admin(h.DeleteOrder))).Methods("DELETE")
}

type orderItemRequest struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}

type orderRequest struct {
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerPhone   string             `json:"customer_phone"`
	ShippingAddress string             `json:"shipping_address"`
	BillingAddress  string             `json:"billing_address"`
	Items           []orderItemRequest `json:"items"`
	Subtotal        float64            `json:"subtotal"`
	Tax             float64            `json:"tax"`
	ShippingCost    float64            `json:"shipping_cost"`
	Total           float64            `json:"total"`
	Status          string             `json:"status"`
	Notes           string             `json:"notes"`
}

type orderUpdateRequest struct {
	Status          *string `json:"status"`
	Notes           *string `json:"notes"`
	ShippingAddress *string `json:"shipping_address"`
	BillingAddress  *string `json:"billing_address"`
}

// ListOrders handles GET /api/v1/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	params, err := httputil.ParsePagination(r, h.defaultPageSize, h.maxPageSize)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var filters domain.OrderFilters
	q := r.URL.Query()
	if v := q.Get("status"); v != "" {
		if !domain.ValidStatus(v) {
			httputil.RespondError(w, http.StatusBadRequest, "invalid order status: "+v)
			return
		}
		filters.Status = &v
	}
	if v := q.Get("customer_email"); v != "" {
		filters.CustomerEmail = &v
	}

	resp, err := h.listHandler.Handle(r.Context(), query.ListOrdersQuery{Params: params, Filters: filters})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list orders")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, resp)
}

// GetStatistics handles GET /api/v1/orders/statistics
func (h *OrderHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statisticsHandler.Handle(r.Context(), query.OrderStatisticsQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to get order statistics")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, stats)
}

// GetOrder handles GET /api/v1/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	order, err := h.getHandler.Handle(r.Context(), query.GetOrderQuery{ID: id})
	if err != nil {
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, order)
}

// GetOrderByNumber handles GET /api/v1/orders/number/{orderNumber}
func (h *OrderHandler) GetOrderByNumber(w http.ResponseWriter, r *http.Request) {
	orderNumber := mux.Vars(r)["orderNumber"]

	order, err := h.getByNumberHandler.Handle(r.Context(), query.GetOrderByNumberQuery{OrderNumber: orderNumber})
	if err != nil {
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, order)
}

// CreateOrder handles POST /api/v1/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Subtotal,
		})
	}

	cmd := command.CreateOrderCommand{Order: domain.OrderCreate{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Items:           items,
		Subtotal:        req.Subtotal,
		Tax:             req.Tax,
		ShippingCost:    req.ShippingCost,
		Total:           req.Total,
		Status:          req.Status,
		Notes:           req.Notes,
	}}

	order, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create order")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, order)
}

// UpdateOrder handles PUT /api/v1/orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req orderUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateOrderCommand{ID: id, Update: domain.OrderUpdate{
		Status:          req.Status,
		Notes:           req.Notes,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
	}}

	order, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update order")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, order)
}

// DeleteOrder handles DELETE /api/v1/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteOrderCommand{ID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete order")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, httputil.MessageResponse{Message: "Order deleted successfully", ID: id})
}
