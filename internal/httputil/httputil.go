// Package httputil carries the response and query-parsing helpers shared by
// the delivery handlers. Error bodies use the {"detail": ...} shape the
// admin frontend already consumes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/storekit/admin-backend/internal/apperrors"
	"github.com/storekit/admin-backend/internal/pagination"
	"github.com/storekit/admin-backend/pkg/logger"
)

// MessageResponse is the body returned by delete operations.
type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// RespondJSON writes payload with the given status.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to encode response")
		}
	}
}

// RespondError writes an error body with the given status.
func RespondError(w http.ResponseWriter, status int, detail string) {
	RespondJSON(w, status, ErrorResponse{Detail: detail})
}

// RespondAppError maps a classified failure to its status code: not found,
// conflict, or server error. CorruptRecord and DatabaseError both surface as
// generic database failures.
func RespondAppError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		RespondError(w, http.StatusNotFound, rootMessage(err))
	case errors.Is(err, apperrors.ErrConflict):
		RespondError(w, http.StatusConflict, rootMessage(err))
	case errors.Is(err, apperrors.ErrInvalid):
		RespondError(w, http.StatusBadRequest, rootMessage(err))
	default:
		RespondError(w, http.StatusInternalServerError, "Database operation failed")
	}
}

// rootMessage strips the usecase wrapping so the client sees the
// repository's caller-facing message.
func rootMessage(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}
		if unwrapped == apperrors.ErrNotFound || unwrapped == apperrors.ErrConflict ||
			unwrapped == apperrors.ErrInvalid {
			return err.Error()
		}
		err = unwrapped
	}
}

// ParsePagination reads page/page_size query parameters, applying defaults
// and enforcing page >= 1 and 1 <= page_size <= max.
func ParsePagination(r *http.Request, defaultSize, maxSize int) (pagination.Params, error) {
	params := pagination.Params{Page: 1, PageSize: defaultSize}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return params, errors.New("page must be a positive integer")
		}
		params.Page = page
	}

	if raw := r.URL.Query().Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 || size > maxSize {
			return params, errors.New("page_size must be between 1 and " + strconv.Itoa(maxSize))
		}
		params.PageSize = size
	}

	return params, nil
}
