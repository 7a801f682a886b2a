package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projectmanager/internal/cli"
	"github.com/thenoetrevino/projectmanager/internal/config"
)

// ConfigStatus is the JSON form of `pm setup config --check`
type ConfigStatus struct {
	Path         string   `json:"path"`
	Exists       bool     `json:"exists"`
	DatabasePath string   `json:"database_path"`
	Theme        string   `json:"theme"`
	Conflicts    []string `json:"key_conflicts,omitempty"`
}

// ConfigCmd returns the setup config subcommand
func ConfigCmd() *cobra.Command {
	var checkFlag bool
	var removeFlag bool
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the default configuration file",
		Long: `Write a config.yaml with every setting at its default value, ready to edit.

The file lives at $PM_CONFIG, $XDG_CONFIG_HOME/pm/config.yaml or ~/.config/pm/config.yaml.

Examples:
  # Create the file (refuses to overwrite)
  pm setup config

  # Replace an existing file with defaults
  pm setup config --force

  # Check where the file is and whether key bindings collide
  pm setup config --check

  # Remove the file
  pm setup config --remove
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)
			switch {
			case checkFlag:
				return CheckConfig(formatter)
			case removeFlag:
				return RemoveConfig(formatter)
			default:
				return InstallConfig(formatter, forceFlag)
			}
		},
	}

	cmd.Flags().BoolVar(&checkFlag, "check", false, "Show the config location and key binding conflicts")
	cmd.Flags().BoolVar(&removeFlag, "remove", false, "Remove the config file")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")
	cmd.MarkFlagsMutuallyExclusive("check", "remove", "force")

	cli.AddOutputFlags(cmd)

	return cmd
}

// InstallConfig writes the default configuration
func InstallConfig(f *cli.OutputFormatter, force bool) error {
	path, err := config.Path()
	if err != nil {
		return cli.Fail(f, "CONFIG_PATH_ERROR", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		err := fmt.Errorf("config file already exists at %s", path)
		if fmtErr := f.ErrorWithSuggestion("CONFIG_EXISTS", err.Error(), "Use --force to overwrite it"); fmtErr != nil {
			return fmtErr
		}
		return &cli.CommandError{Code: cli.ExitValidation, Err: err}
	}

	if err := config.Default().Save(); err != nil {
		return cli.Fail(f, "CONFIG_WRITE_ERROR", err)
	}

	if f.JSON {
		return f.WriteJSON(map[string]any{"success": true, "path": path})
	}
	if f.Quiet {
		f.Println(path)
		return nil
	}
	f.Printf("✓ Wrote default configuration\n  Config: %s\n", path)
	return nil
}

// CheckConfig reports where the config lives and what it resolves to
func CheckConfig(f *cli.OutputFormatter) error {
	path, err := config.Path()
	if err != nil {
		return cli.Fail(f, "CONFIG_PATH_ERROR", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return cli.Fail(f, "CONFIG_LOAD_ERROR", err)
	}

	status := ConfigStatus{
		Path:         path,
		Exists:       fileExists(path),
		DatabasePath: cfg.DatabasePath,
		Theme:        cfg.ColorScheme.Preset,
		Conflicts:    cfg.KeyMappings.Conflicts(),
	}

	conflictErr := &cli.CommandError{Code: cli.ExitValidation, Err: errors.New("key binding conflicts")}

	if f.JSON {
		if err := f.WriteJSON(status); err != nil {
			return err
		}
		if len(status.Conflicts) > 0 {
			return conflictErr
		}
		return nil
	}

	state := "not found (defaults in use)"
	if status.Exists {
		state = "found"
	}
	f.Printf("Config:   %s (%s)\n", filepath.Clean(status.Path), state)
	f.Printf("Database: %s\n", status.DatabasePath)
	f.Printf("Theme:    %s\n", status.Theme)
	if len(status.Conflicts) == 0 {
		f.Println("✓ No key binding conflicts")
		return nil
	}
	for _, c := range status.Conflicts {
		f.Printf("✗ %s\n", c)
	}
	return conflictErr
}

// RemoveConfig deletes the config file; a missing file is not an error
func RemoveConfig(f *cli.OutputFormatter) error {
	path, err := config.Path()
	if err != nil {
		return cli.Fail(f, "CONFIG_PATH_ERROR", err)
	}

	err = os.Remove(path)
	removed := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cli.Fail(f, "CONFIG_REMOVE_ERROR", err)
	}

	if f.JSON {
		return f.WriteJSON(map[string]any{"success": true, "path": path, "removed": removed})
	}
	if removed {
		f.Printf("✓ Removed %s\n", path)
	} else {
		f.Printf("Nothing to remove at %s\n", path)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
