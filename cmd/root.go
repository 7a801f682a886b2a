// Package cmd assembles the pm command tree.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projectmanager/internal/cli"
	"github.com/thenoetrevino/projectmanager/internal/cli/project"
	"github.com/thenoetrevino/projectmanager/internal/cli/setup"
	"github.com/thenoetrevino/projectmanager/internal/cli/styles"
	"github.com/thenoetrevino/projectmanager/internal/config"
	"github.com/thenoetrevino/projectmanager/internal/logging"
)

// NewRootCmd builds the pm command tree
func NewRootCmd() *cobra.Command {
	var dbPath string
	var logCloser io.Closer

	rootCmd := &cobra.Command{
		Use:   "pm",
		Short: "pm - a terminal project board",
		Long: `pm tracks personal projects on a three column board: TODO, DOING and DONE.

Run without a subcommand to open the board.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if dbPath != "" {
				cfg.DatabasePath = dbPath
			}

			// Initialize logging to file before anything else
			closer, err := logging.Init(cfg.Level())
			if err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			logCloser = closer

			for _, conflict := range cfg.KeyMappings.Conflicts() {
				slog.Warn("key binding conflict", "detail", conflict)
			}

			styles.Init(cfg.ColorScheme)
			cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCloser != nil {
				return logCloser.Close()
			}
			return nil
		},
		RunE: runBoard,
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file (default from config, ~/.pm/pm.db)")

	rootCmd.AddCommand(BoardCmd())
	rootCmd.AddCommand(ServeCmd())
	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(setup.SetupCmd())

	return rootCmd
}

// Execute runs pm with os.Args and returns the process exit code
func Execute() int {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil && !cli.IsReported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
