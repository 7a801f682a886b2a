package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CreateProjectRequest is the body of POST /api/v1/projects
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"` // YYYY-MM-DD, defaults to today
	State       string `json:"state"`    // defaults to todo
}

// UpdateProjectRequest is the body of PATCH /api/v1/projects/{id}.
// Nil fields are left unchanged.
type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline"`
}

// MoveProjectRequest is the body of POST /api/v1/projects/{id}/move
type MoveProjectRequest struct {
	State string `json:"state"`
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (64 KB)
const maxJSONBodyBytes = 64 << 10

// decodeJSONBody decodes the request body as JSON into dst
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", errBadRequest, err)
	}
	return nil
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// parseID extracts the project id path parameter
func parseID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: project id %q is not a UUID", errBadRequest, raw)
	}
	return id, nil
}
