// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/storekit/admin-backend/internal/pagination"
)

// Store drivers.
const (
	DriverWeaviate = "weaviate"
	DriverMemory   = "memory"
)

// Config holds all service settings.
type Config struct {
	AppName     string
	Version     string
	Port        string
	Environment string
	LogLevel    string

	StoreDriver    string
	WeaviateHost   string
	WeaviatePort   string
	WeaviateScheme string

	CORSOrigins []string

	DefaultPageSize int
	MaxPageSize     int

	// Optional integrations: empty values disable the component.
	KafkaBrokers   []string
	RedisAddr      string
	AdminJWTSecret string
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppName:     "ecommerce-admin-backend",
		Version:     "1.0.0",
		Port:        getEnv("PORT", "7999"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		StoreDriver:    getEnv("STORE_DRIVER", DriverWeaviate),
		WeaviateHost:   getEnv("WEAVIATE_HOST", "localhost"),
		WeaviatePort:   getEnv("WEAVIATE_PORT", "8080"),
		WeaviateScheme: getEnv("WEAVIATE_SCHEME", "http"),

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001,http://localhost:7999")),

		DefaultPageSize: getEnvInt("DEFAULT_PAGE_SIZE", pagination.DefaultPageSize),
		MaxPageSize:     getEnvInt("MAX_PAGE_SIZE", pagination.MaxPageSize),

		KafkaBrokers:   splitList(getEnv("KAFKA_BROKERS", "")),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
	}
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
