package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storekit/admin-backend/pkg/logger"
)

// CacheConfig holds response cache settings.
type CacheConfig struct {
	TTL time.Duration
}

// DefaultCacheConfig returns the default cache settings.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{TTL: 5 * time.Minute}
}

// captureWriter buffers the response so it can be stored after serving.
type captureWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.statusCode = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(p []byte) (int, error) {
	cw.body.Write(p)
	return cw.ResponseWriter.Write(p)
}

// ResponseCache caches successful GET responses in Redis with a fixed TTL.
// TTL-based only: writes do not invalidate, so cached listings can lag by up
// to the TTL. The cache key includes the Authorization header, so responses
// to guarded routes are never replayed to callers with different credentials.
// A nil client disables the middleware.
func ResponseCache(client *redis.Client, cfg CacheConfig, next http.Handler) http.Handler {
	if client == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		key := cacheKey(r)
		ctx := r.Context()

		cached, err := client.Get(ctx, key).Bytes()
		if err == nil && len(cached) > 0 {
			logger.Logger.Debug().Str("path", r.URL.Path).Msg("Cache hit")
			w.Header().Set("X-Cache", "HIT")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(cached)
			return
		}

		cw := &captureWriter{ResponseWriter: w, statusCode: http.StatusOK}
		cw.Header().Set("X-Cache", "MISS")
		next.ServeHTTP(cw, r)

		if cw.statusCode == http.StatusOK && cw.body.Len() > 0 {
			if err := client.Set(ctx, key, cw.body.Bytes(), cfg.TTL).Err(); err != nil {
				logger.Logger.Warn().Err(err).Str("path", r.URL.Path).Msg("Failed to cache response")
			}
		}
	})
}

// cacheKey hashes method, request URI and the Authorization header. Keying on
// credentials keeps cache entries private to the caller that produced them.
func cacheKey(r *http.Request) string {
	sum := sha256.Sum256([]byte(r.Method + ":" + r.URL.RequestURI() + ":" + r.Header.Get("Authorization")))
	return "admin:cache:" + hex.EncodeToString(sum[:])
}
