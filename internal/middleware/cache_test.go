package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func cacheKeyRequest(t *testing.T, target, authHeader string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return req
}

func TestCacheKeyVariesWithAuthorization(t *testing.T) {
	admin := cacheKey(cacheKeyRequest(t, "/api/v1/orders?page=1", "Bearer admin-token"))
	anonymous := cacheKey(cacheKeyRequest(t, "/api/v1/orders?page=1", ""))
	other := cacheKey(cacheKeyRequest(t, "/api/v1/orders?page=1", "Bearer other-token"))

	assert.NotEqual(t, admin, anonymous)
	assert.NotEqual(t, admin, other)
	assert.NotEqual(t, anonymous, other)
}

func TestCacheKeyStableForSameCaller(t *testing.T) {
	first := cacheKey(cacheKeyRequest(t, "/api/v1/orders?page=1", "Bearer admin-token"))
	second := cacheKey(cacheKeyRequest(t, "/api/v1/orders?page=1", "Bearer admin-token"))

	assert.Equal(t, first, second)
}

func TestCacheKeyVariesWithQuery(t *testing.T) {
	pageOne := cacheKey(cacheKeyRequest(t, "/api/v1/orders?page=1", "Bearer admin-token"))
	pageTwo := cacheKey(cacheKeyRequest(t, "/api/v1/orders?page=2", "Bearer admin-token"))

	assert.NotEqual(t, pageOne, pageTwo)
}

func TestResponseCacheNilClientPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := ResponseCache(nil, DefaultCacheConfig(), next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
