// Package setup holds the commands that prepare a machine for pm
// e.g., pm setup config
package setup

import (
	"github.com/spf13/cobra"
)

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Prepare configuration files",
		Long:  `Create, inspect or remove the files pm reads at startup.`,
	}

	cmd.AddCommand(ConfigCmd())

	return cmd
}
