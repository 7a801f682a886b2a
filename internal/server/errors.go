package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/projectmanager/internal/models"
)

// errBadRequest marks malformed requests: unreadable JSON or a non-UUID id
var errBadRequest = errors.New("bad request")

// ErrorResponse is an RFC 9457 problem details body
type ErrorResponse struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Field    string `json:"field,omitempty"`
}

// writeError writes a problem details response for err
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		resp.Field = vErr.Field
	}
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		resp.Detail = "internal server error"
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response", "error", encErr)
	}
}

// errorStatus maps domain errors to HTTP status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidState), models.IsValidation(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
