// Package server exposes the board over a local HTTP API with Prometheus metrics
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/thenoetrevino/projectmanager/internal/app"
	"github.com/thenoetrevino/projectmanager/internal/models"
)

const shutdownTimeout = 5 * time.Second

// Server serves one App over HTTP
type Server struct {
	app     *app.App
	metrics *Metrics
	handler http.Handler
	logger  *slog.Logger
}

// New wires the router, handlers and metrics for application
func New(application *app.App, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	metrics := NewMetrics()
	svc := application.ProjectService

	handler := NewRouter(
		NewProjectHandler(svc, application.Store().Now),
		&HealthHandler{svc: svc, metrics: metrics},
		metrics,
		middleware.RequestID,
		Logging(logger),
		Recovery(logger),
	)

	return &Server{
		app:     application,
		metrics: metrics,
		handler: handler,
		logger:  logger,
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Metrics returns the metrics the server exports
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// WatchEvents feeds the metrics from the app's event publisher until ctx is done
func (s *Server) WatchEvents(ctx context.Context) (<-chan struct{}, error) {
	return s.metrics.Watch(ctx, s.app.Events(), func(state models.State) int {
		return s.app.ProjectService.Count(ctx, state)
	})
}

// Serve accepts connections on l until ctx is done, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	if _, err := s.WatchEvents(ctx); err != nil {
		s.logger.Error("metrics cannot watch board events", "error", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(l)
	}()

	s.logger.Info("pm api listening", "addr", l.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("pm api stopped")
	return nil
}

// ListenAndServe listens on addr and calls Serve
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	l, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, l)
}
