package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projectmanager/internal/cli"
	"github.com/thenoetrevino/projectmanager/internal/launcher"
)

// BoardCmd returns the board command, which opens the interactive board
func BoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board",
		Long: `Open the three column board in the terminal.

Keys are configurable in config.yaml; press ? on the board for the list.`,
		Args: cobra.NoArgs,
		RunE: runBoard,
	}
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := cli.ConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	return launcher.Launch(cmd.Context(), cfg)
}
