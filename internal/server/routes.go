package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter creates an HTTP handler with all board routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	projectHandler *ProjectHandler,
	healthHandler *HealthHandler,
	metrics *Metrics,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/board", projectHandler.GetBoard)
		r.Get("/states/{state}/projects", projectHandler.ListState)

		r.Post("/projects", projectHandler.CreateProject)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Patch("/projects/{id}", projectHandler.UpdateProject)
		r.Delete("/projects/{id}", projectHandler.DeleteProject)
		r.Post("/projects/{id}/move", projectHandler.MoveProject)
	})

	return r
}
