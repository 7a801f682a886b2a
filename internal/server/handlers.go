package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/thenoetrevino/projectmanager/internal/converters"
	"github.com/thenoetrevino/projectmanager/internal/models"
	projectservice "github.com/thenoetrevino/projectmanager/internal/services/project"
)

// ProjectHandler serves the board API on top of the project service
type ProjectHandler struct {
	svc projectservice.Service
	now func() time.Time
}

// NewProjectHandler creates a handler. now should be the board clock.
func NewProjectHandler(svc projectservice.Service, now func() time.Time) *ProjectHandler {
	return &ProjectHandler{svc: svc, now: now}
}

// GetBoard handles GET /api/v1/board
func (h *ProjectHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.svc.Board(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, converters.BoardToView(board))
}

// ListState handles GET /api/v1/states/{state}/projects
func (h *ProjectHandler) ListState(w http.ResponseWriter, r *http.Request) {
	state, err := models.ParseState(chi.URLParam(r, "state"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	board, err := h.svc.Board(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, converters.ColumnToView(board.Column(state)))
}

// CreateProject handles POST /api/v1/projects
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	state := models.StateToDo
	if req.State != "" {
		var err error
		if state, err = models.ParseState(req.State); err != nil {
			writeError(w, r, err)
			return
		}
	}

	now := h.now()
	deadline, err := models.ParseDeadlineOrToday(req.Deadline, now)
	if err != nil {
		writeError(w, r, err)
		return
	}

	project, err := h.svc.Save(r.Context(), projectservice.SaveRequest{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    deadline,
		State:       &state,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/projects/"+project.ID.String())
	writeJSON(w, http.StatusCreated, converters.ProjectToView(project, now))
}

// GetProject handles GET /api/v1/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	project, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, converters.ProjectToView(project, h.now()))
}

// UpdateProject handles PATCH /api/v1/projects/{id}
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req UpdateProjectRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	existing, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	save := projectservice.SaveRequest{
		ID:          &id,
		Title:       existing.Title,
		Description: existing.Description,
		Deadline:    existing.Deadline,
	}
	if req.Title != nil {
		save.Title = *req.Title
	}
	if req.Description != nil {
		save.Description = *req.Description
	}

	now := h.now()
	if req.Deadline != nil {
		if save.Deadline, err = models.ParseDeadline(*req.Deadline, now.Location()); err != nil {
			writeError(w, r, err)
			return
		}
	}

	project, err := h.svc.Save(r.Context(), save)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, converters.ProjectToView(project, now))
}

// MoveProject handles POST /api/v1/projects/{id}/move
func (h *ProjectHandler) MoveProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req MoveProjectRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	to, err := models.ParseState(req.State)
	if err != nil {
		writeError(w, r, err)
		return
	}

	project, err := h.svc.Move(r.Context(), id, to)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, converters.ProjectToView(project, h.now()))
}

// DeleteProject handles DELETE /api/v1/projects/{id}
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.svc.Remove(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HealthHandler reports liveness together with board counts and metrics uptime
type HealthHandler struct {
	svc     projectservice.Service
	metrics *Metrics
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status   string          `json:"status"`
	Projects map[string]int  `json:"projects"`
	Metrics  MetricsSnapshot `json:"metrics"`
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	counts := make(map[string]int, 3)
	for _, state := range models.States() {
		counts[state.String()] = h.svc.Count(r.Context(), state)
	}
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Projects: counts,
		Metrics:  h.metrics.GetSnapshot(),
	})
}
