// Package launcher wires the board TUI to an opened application.
package launcher

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/projectmanager/internal/app"
	"github.com/thenoetrevino/projectmanager/internal/config"
	"github.com/thenoetrevino/projectmanager/internal/tui"
	"github.com/thenoetrevino/projectmanager/internal/tui/components"
)

// Launch opens the database at cfg.DatabasePath and runs the board until the
// user quits or ctx is cancelled.
func Launch(ctx context.Context, cfg *config.Config) error {
	application, err := app.Open(ctx, cfg.DatabasePath, app.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	// database cleanup
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing application", "error", err)
		}
	}()

	return Run(ctx, application, cfg)
}

// Run starts the board on an existing application. The caller owns application.
func Run(ctx context.Context, application *app.App, cfg *config.Config) error {
	components.InitStyles(cfg.ColorScheme)

	model := tui.InitialModel(ctx, application.ProjectService, cfg, application.Store().Now)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// tea.WithContext stops the program; wait for the terminal to be restored
		<-errChan
	}
	return nil
}
