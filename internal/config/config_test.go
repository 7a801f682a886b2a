package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "pm", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	assert.Equal(t, "q", defaults.Quit)
	assert.Equal(t, "a", defaults.AddProject)
	assert.Equal(t, "m", defaults.ActionMenu)
	assert.Equal(t, "ctrl+s", defaults.SaveForm)
	assert.Empty(t, defaults.Conflicts())
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("PM_CONFIG", "")
	t.Setenv("PM_THEME_FILE", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, DefaultServerAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.NotEmpty(t, cfg.DatabasePath)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("PM_CONFIG", "")
	t.Setenv("PM_THEME_FILE", "")
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	writeConfig(t, tempDir, `key_mappings:
  quit: "x"
  add_project: "n"
database_path: /tmp/boards/pm.db
log_level: debug
server:
  addr: ":9000"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "n", cfg.KeyMappings.AddProject)
	// Unset keys keep their defaults
	assert.Equal(t, "e", cfg.KeyMappings.EditProject)
	assert.Equal(t, "/tmp/boards/pm.db", cfg.DatabasePath)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, ":9000", cfg.Server.Addr)
}

func TestLoadConfigExplicitPath(t *testing.T) {
	tempDir := t.TempDir()
	path := writeConfig(t, tempDir, "log_level: error\n")
	t.Setenv("PM_CONFIG", path)
	t.Setenv("PM_THEME_FILE", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "elsewhere"))

	got, err := Path()
	require.NoError(t, err)
	assert.Equal(t, path, got)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, cfg.Level())
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("PM_CONFIG", writeConfig(t, tempDir, "key_mappings: [unterminated\n"))

	_, err := Load()
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("PM_CONFIG", "")
	t.Setenv("PM_THEME_FILE", "")
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg := Default()
	cfg.KeyMappings.Quit = "Q"
	cfg.Server.Addr = "localhost:1234"
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Q", loaded.KeyMappings.Quit)
	assert.Equal(t, "localhost:1234", loaded.Server.Addr)
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cfg := Config{LogLevel: tt.in}
			assert.Equal(t, tt.want, cfg.Level())
		})
	}
}

func TestKeyMappingConflicts(t *testing.T) {
	keys := DefaultKeyMappings()
	keys.DeleteProject = "a"

	conflicts := keys.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Contains(t, conflicts[0], "add_project")
	assert.Contains(t, conflicts[0], "delete_project")
}
