package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projectmanager/internal/cli"
	"github.com/thenoetrevino/projectmanager/internal/logging"
	"github.com/thenoetrevino/projectmanager/internal/server"
)

// ServeCmd returns the serve command, which exposes the board over HTTP
func ServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board over a local HTTP API",
		Long: `Serve the board as JSON under /api/v1, with /health and Prometheus /metrics.

Examples:
  # Listen on the configured address (default 127.0.0.1:7420)
  pm serve

  # Pick another port
  pm serve --addr 127.0.0.1:9000
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := cli.ConfigFromContext(ctx)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			cliInstance, err := cli.GetCLIFromContext(ctx)
			if err != nil {
				return err
			}
			defer cliInstance.CloseQuietly()

			srv := server.New(cliInstance.App, logging.Logger)
			if _, err := srv.WatchEvents(ctx); err != nil {
				return err
			}

			cmd.Printf("pm api listening on http://%s\n", addr)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config server.addr)")

	return cmd
}
