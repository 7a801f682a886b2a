// Package cli holds the plumbing shared by every pm subcommand:
// the CLI context, output formatting, exit codes and flag helpers.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/projectmanager/internal/app"
	"github.com/thenoetrevino/projectmanager/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when the App was injected and belongs to the caller
	owned bool
}

type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// WithApp returns a context carrying application. GetCLIFromContext uses it
// instead of opening the configured database.
func WithApp(ctx context.Context, application *app.App) context.Context {
	return context.WithValue(ctx, appKey, application)
}

// GetCLIFromContext returns a CLI around the App stored in ctx, or opens a new one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if application, ok := ctx.Value(appKey).(*app.App); ok && application != nil {
		return &CLI{App: application}, nil
	}
	return NewCLI(ctx)
}

// WithConfig returns a context carrying an already loaded configuration
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored in ctx, loading it from disk otherwise
func ConfigFromContext(ctx context.Context) (*config.Config, error) {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
		return cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// NewCLI opens the board database the configuration points at
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := ConfigFromContext(ctx)
	if err != nil {
		return nil, err
	}

	application, err := app.Open(ctx, cfg.DatabasePath, app.WithLogger(slog.Default()))
	if err != nil {
		return nil, err
	}

	return &CLI{App: application, owned: true}, nil
}

// Close cleans up CLI resources. Injected apps are left open.
func (c *CLI) Close() error {
	if c == nil || !c.owned || c.App == nil {
		return nil
	}
	return c.App.Close()
}

// CloseQuietly closes c and logs any failure
func (c *CLI) CloseQuietly() {
	if err := c.Close(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("failed to close CLI", "error", err)
	}
}
