package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hongminglow/newsroom-be/internal/http/respond"
	"github.com/hongminglow/newsroom-be/internal/models"
)

// decodeJSON reads the request body into dst. It writes the error response
// itself and reports whether the handler may continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return false
	}
	return true
}

// respondServiceError maps service errors to status codes. subject names the
// resource in 404 messages.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, subject string) {
	switch {
	case errors.Is(err, models.ErrReservedName):
		respond.Error(w, http.StatusBadRequest, `the username "admin" is reserved`)
	case errors.Is(err, models.ErrDuplicateUser):
		respond.Error(w, http.StatusBadRequest, "user already exists")
	case errors.Is(err, models.ErrInvalidCredentials):
		respond.Error(w, http.StatusBadRequest, "invalid credentials")
	case errors.Is(err, models.ErrValidation):
		respond.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrInvalidToken):
		respond.Error(w, http.StatusUnauthorized, "token is not valid")
	case errors.Is(err, models.ErrForbidden):
		respond.Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrNotFound):
		respond.Error(w, http.StatusNotFound, subject+" not found")
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		respond.Internal(w, "server error", err)
	}
}
