package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/storekit/admin-backend/internal/apperrors"
	categoryHTTP "github.com/storekit/admin-backend/internal/category/delivery/http"
	categoryRepo "github.com/storekit/admin-backend/internal/category/repository"
	"github.com/storekit/admin-backend/internal/config"
	"github.com/storekit/admin-backend/internal/httputil"
	"github.com/storekit/admin-backend/internal/middleware"
	orderHTTP "github.com/storekit/admin-backend/internal/order/delivery/http"
	orderRepo "github.com/storekit/admin-backend/internal/order/repository"
	orderCommand "github.com/storekit/admin-backend/internal/order/usecase/command"
	productHTTP "github.com/storekit/admin-backend/internal/product/delivery/http"
	productRepo "github.com/storekit/admin-backend/internal/product/repository"
	sectionHTTP "github.com/storekit/admin-backend/internal/section/delivery/http"
	sectionRepo "github.com/storekit/admin-backend/internal/section/repository"
	siteconfigHTTP "github.com/storekit/admin-backend/internal/siteconfig/delivery/http"
	siteconfigDomain "github.com/storekit/admin-backend/internal/siteconfig/domain"
	siteconfigRepo "github.com/storekit/admin-backend/internal/siteconfig/repository"
	"github.com/storekit/admin-backend/internal/storage"
	"github.com/storekit/admin-backend/internal/storage/memory"
	"github.com/storekit/admin-backend/internal/storage/weaviate"
	"github.com/storekit/admin-backend/kafka"
	"github.com/storekit/admin-backend/pkg/logger"
	"github.com/storekit/admin-backend/pkg/tracing"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.AppName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	tp, err := tracing.InitTracer(cfg.AppName)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}()

	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to store")
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to ensure store schema")
	}

	configRepository := siteconfigRepo.NewSiteConfigRepository(store)
	seedDefaultConfig(ctx, configRepository)

	var publisher *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize Kafka publisher")
		}
		defer publisher.Close()
	} else {
		logger.Logger.Warn().Msg("KAFKA_BROKERS not set, order events disabled")
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()
		logger.Logger.Info().Str("addr", cfg.RedisAddr).Msg("Redis response cache enabled")
	}

	admin := middleware.NoGuard
	if cfg.AdminJWTSecret != "" {
		admin = middleware.AdminGuard(cfg.AdminJWTSecret)
	} else {
		logger.Logger.Warn().Msg("ADMIN_JWT_SECRET not set, admin routes are unguarded")
	}

	router := mux.NewRouter()

	siteconfigHTTP.NewSiteConfigHandler(configRepository).RegisterRoutes(router, admin)
	sectionHTTP.NewSectionHandler(sectionRepo.NewSectionRepository(store), cfg.DefaultPageSize, cfg.MaxPageSize).RegisterRoutes(router, admin)
	categoryHTTP.NewCategoryHandler(categoryRepo.NewCategoryRepository(store), cfg.DefaultPageSize, cfg.MaxPageSize).RegisterRoutes(router, admin)
	productHTTP.NewProductHandler(productRepo.NewProductRepositoryWithTracing(store), cfg.DefaultPageSize, cfg.MaxPageSize).RegisterRoutes(router, admin)

	var orderPublisher orderCommand.EventPublisher
	if publisher != nil {
		orderPublisher = publisher
	}
	orderHTTP.NewOrderHandler(orderRepo.NewOrderRepositoryWithTracing(store), orderPublisher, cfg.DefaultPageSize, cfg.MaxPageSize).RegisterRoutes(router, admin)

	router.Handle("/metrics", promhttp.Handler())
	registerServiceRoutes(router, cfg, store)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	var handler http.Handler = router
	handler = middleware.ResponseCache(redisClient, middleware.DefaultCacheConfig(), handler)
	handler = otelhttp.NewHandler(handler, "admin-backend")
	handler = c.Handler(handler)
	handler = middleware.RequestLogging(handler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.Port).
			Str("store_driver", cfg.StoreDriver).
			Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		logger.Logger.Warn().Msg("Using in-memory store, data will not survive restarts")
		return memory.New(), nil
	default:
		return weaviate.Connect(ctx, weaviate.Config{
			Host:   cfg.WeaviateHost,
			Port:   cfg.WeaviatePort,
			Scheme: cfg.WeaviateScheme,
		})
	}
}

// seedDefaultConfig inserts the default site configuration on first boot.
// A concurrent seeder losing the race gets Conflict, which is fine here.
func seedDefaultConfig(ctx context.Context, repo siteconfigDomain.SiteConfigRepository) {
	_, err := repo.Get(ctx)
	if err == nil {
		return
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Logger.Error().Err(err).Msg("Failed to check for existing site configuration")
		return
	}

	_, err = repo.Create(ctx, siteconfigDomain.SiteConfigCreate{
		CompanyName:    "My E-Commerce Store",
		HeaderText:     "Welcome to Our Store",
		Tagline:        "Quality Products at Great Prices",
		PrimaryColor:   "#1a73e8",
		SecondaryColor: "#ffffff",
		ContactEmail:   "info@mystore.com",
		ContactPhone:   "+1-234-567-8900",
		Address:        "123 Main Street, City, Country",
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to seed default site configuration")
		return
	}
	logger.Logger.Info().Msg("Default site configuration created")
}

func registerServiceRoutes(router *mux.Router, cfg *config.Config, store storage.Store) {
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondJSON(w, http.StatusOK, map[string]string{
			"name":    cfg.AppName,
			"version": cfg.Version,
			"health":  "/api/v1/health",
		})
	}).Methods("GET")

	router.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		connected := store.Ready(r.Context())
		status := "healthy"
		if !connected {
			status = "degraded"
		}
		httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"status":          status,
			"version":         cfg.Version,
			"store_connected": connected,
		})
	}).Methods("GET")
}
