package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/projectmanager/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	tempDir := t.TempDir()
	themeFile := filepath.Join(tempDir, "theme.yaml")
	require.NoError(t, os.WriteFile(themeFile, []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
  overdue: "#0000FF"
`), 0o644))

	t.Setenv("PM_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("PM_THEME_FILE", themeFile)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "#FF0000", cfg.ColorScheme.Accent)
	assert.Equal(t, "#00FF00", cfg.ColorScheme.Create)
	assert.Equal(t, "#0000FF", cfg.ColorScheme.Overdue)
	// Other colors still have defaults
	assert.Equal(t, colors.Default().Delete, cfg.ColorScheme.Delete)
}

func TestPresetWithOverrides(t *testing.T) {
	scheme := ColorScheme{Preset: "wave", Accent: "#123456"}
	scheme.ApplyDefaults()

	assert.Equal(t, "#123456", scheme.Accent)
	assert.Equal(t, colors.Wave().Normal, scheme.Normal)
}

func TestUnknownPresetFallsBack(t *testing.T) {
	scheme := ColorScheme{Preset: "neon"}
	scheme.ApplyDefaults()

	assert.Equal(t, colors.Default().Accent, scheme.Accent)
	for _, name := range colors.Presets() {
		assert.Equal(t, name, colors.GetPreset(name).Preset)
	}
}
