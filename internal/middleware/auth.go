package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storekit/admin-backend/internal/httputil"
	"github.com/storekit/admin-backend/pkg/logger"
)

// Guard wraps a handler with an access check.
type Guard func(http.HandlerFunc) http.HandlerFunc

// NoGuard passes the handler through unchanged. Used when no admin secret is
// configured, matching deployments where the dashboard fronts the API.
func NoGuard(next http.HandlerFunc) http.HandlerFunc {
	return next
}

// AdminGuard returns a guard that requires a bearer token signed with the
// shared admin secret and carrying role=admin.
func AdminGuard(secret string) Guard {
	if secret == "" {
		return NoGuard
	}
	key := []byte(secret)

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Logger.Warn().Msg("Missing authorization header")
				httputil.RespondError(w, http.StatusUnauthorized, "Authorization header required")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Logger.Warn().Msg("Invalid authorization header format")
				httputil.RespondError(w, http.StatusUnauthorized, "Invalid authorization header format")
				return
			}

			token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return key, nil
			})
			if err != nil || !token.Valid {
				logger.Logger.Warn().Err(err).Msg("Invalid token")
				httputil.RespondError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				httputil.RespondError(w, http.StatusUnauthorized, "Invalid token claims")
				return
			}
			role, _ := claims["role"].(string)
			if role != "admin" {
				logger.Logger.Warn().Str("role", role).Msg("Admin access denied")
				httputil.RespondError(w, http.StatusForbidden, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		}
	}
}
