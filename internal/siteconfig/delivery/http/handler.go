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
	"github.com/storekit/admin-backend/internal/siteconfig/domain"
	"github.com/storekit/admin-backend/internal/siteconfig/usecase/command"
	"github.com/storekit/admin-backend/internal/siteconfig/usecase/query"
	"github.com/storekit/admin-backend/pkg/logger"
)

// SiteConfigHandler handles HTTP requests for the site configuration
type SiteConfigHandler struct {
	createHandler *command.CreateConfigHandler
	updateHandler *command.UpdateConfigHandler
	getHandler    *query.GetConfigHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewSiteConfigHandler creates a new site config handler
func NewSiteConfigHandler(repo domain.SiteConfigRepository) *SiteConfigHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_site_config_requests_total",
			Help: "Total number of requests to site config endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)
	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admin_site_config_request_duration_seconds",
			Help:    "Duration of site config requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &SiteConfigHandler{
		createHandler:  command.NewCreateConfigHandler(repo),
		updateHandler:  command.NewUpdateConfigHandler(repo),
		getHandler:     query.NewGetConfigHandler(repo),
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *SiteConfigHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers site config routes on the router
func (h *SiteConfigHandler) RegisterRoutes(router *mux.Router, admin middleware.Guard) {
	router.HandleFunc("/api/v1/site-config", h.metricsMiddleware("/api/v1/site-config", h.GetConfig)).Methods("GET")
	router.HandleFunc("/api/v1/site-config", h.metricsMiddleware("/api/v1/site-config", admin(h.CreateConfig))).Methods("POST")
	router.HandleFunc("/api/v1/site-config", h.metricsMiddleware("/api/v1/site-config", admin(h.UpdateConfig))).Methods("PUT")
}

type siteConfigRequest struct {
	CompanyName    string `json:"company_name"`
	LogoURL        string `json:"logo_url"`
	HeaderText     string `json:"header_text"`
	Tagline        string `json:"tagline"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	ContactEmail   string `json:"contact_email"`
	ContactPhone   string `json:"contact_phone"`
	Address        string `json:"address"`

	BannerEnabled bool   `json:"banner_enabled"`
	BannerText    string `json:"banner_text"`
	BannerLink    string `json:"banner_link"`
	BannerColor   string `json:"banner_color"`

	CurrencySymbol        string  `json:"currency_symbol"`
	TaxRate               float64 `json:"tax_rate"`
	FreeShippingThreshold float64 `json:"free_shipping_threshold"`
}

// GetConfig handles GET /api/v1/site-config
func (h *SiteConfigHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	config, err := h.getHandler.Handle(r.Context(), query.GetConfigQuery{})
	if err != nil {
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, config)
}

// CreateConfig handles POST /api/v1/site-config
func (h *SiteConfigHandler) CreateConfig(w http.ResponseWriter, r *http.Request) {
	// Field defaults applied before decode, mirroring absent-field semantics
	req := siteConfigRequest{
		PrimaryColor:          "#000000",
		SecondaryColor:        "#FFFFFF",
		BannerColor:           "#0ea5e9",
		CurrencySymbol:        "₹",
		TaxRate:               18.0,
		FreeShippingThreshold: 500.0,
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.CreateConfigCommand{Config: domain.SiteConfigCreate{
		CompanyName:           req.CompanyName,
		LogoURL:               req.LogoURL,
		HeaderText:            req.HeaderText,
		Tagline:               req.Tagline,
		PrimaryColor:          req.PrimaryColor,
		SecondaryColor:        req.SecondaryColor,
		ContactEmail:          req.ContactEmail,
		ContactPhone:          req.ContactPhone,
		Address:               req.Address,
		BannerEnabled:         req.BannerEnabled,
		BannerText:            req.BannerText,
		BannerLink:            req.BannerLink,
		BannerColor:           req.BannerColor,
		CurrencySymbol:        req.CurrencySymbol,
		TaxRate:               req.TaxRate,
		FreeShippingThreshold: req.FreeShippingThreshold,
	}}

	config, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create site config")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, config)
}

type siteConfigUpdateRequest struct {
	CompanyName    *string `json:"company_name"`
	LogoURL        *string `json:"logo_url"`
	HeaderText     *string `json:"header_text"`
	Tagline        *string `json:"tagline"`
	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`
	ContactEmail   *string `json:"contact_email"`
	ContactPhone   *string `json:"contact_phone"`
	Address        *string `json:"address"`

	BannerEnabled *bool   `json:"banner_enabled"`
	BannerText    *string `json:"banner_text"`
	BannerLink    *string `json:"banner_link"`
	BannerColor   *string `json:"banner_color"`

	CurrencySymbol        *string  `json:"currency_symbol"`
	TaxRate               *float64 `json:"tax_rate"`
	FreeShippingThreshold *float64 `json:"free_shipping_threshold"`
}

// UpdateConfig handles PUT /api/v1/site-config
func (h *SiteConfigHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req siteConfigUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateConfigCommand{Update: domain.SiteConfigUpdate{
		CompanyName:           req.CompanyName,
		LogoURL:               req.LogoURL,
		HeaderText:            req.HeaderText,
		Tagline:               req.Tagline,
		PrimaryColor:          req.PrimaryColor,
		SecondaryColor:        req.SecondaryColor,
		ContactEmail:          req.ContactEmail,
		ContactPhone:          req.ContactPhone,
		Address:               req.Address,
		BannerEnabled:         req.BannerEnabled,
		BannerText:            req.BannerText,
		BannerLink:            req.BannerLink,
		BannerColor:           req.BannerColor,
		CurrencySymbol:        req.CurrencySymbol,
		TaxRate:               req.TaxRate,
		FreeShippingThreshold: req.FreeShippingThreshold,
	}}

	config, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update site config")
		httputil.RespondAppError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, config)
}
