package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": role})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func guardedRequest(t *testing.T, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	guard := AdminGuard(testSecret)
	handler := guard(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAdminGuardMissingHeader(t *testing.T) {
	rec := guardedRequest(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminGuardMalformedHeader(t *testing.T) {
	rec := guardedRequest(t, "not-a-bearer-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminGuardInvalidToken(t *testing.T) {
	rec := guardedRequest(t, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminGuardWrongRole(t *testing.T) {
	rec := guardedRequest(t, "Bearer "+signedToken(t, "viewer"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminGuardAdminRole(t *testing.T) {
	rec := guardedRequest(t, "Bearer "+signedToken(t, "admin"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNoGuardPassesThrough(t *testing.T) {
	handler := NoGuard(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
