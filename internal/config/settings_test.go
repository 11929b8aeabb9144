package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbshell/jbshell/internal/models"
)

func TestLoadSettingsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.NewSettings(), settings)
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	settings := models.NewSettings()
	settings.EmptyScroll = true
	settings.NetworkInterface = "wlp3s0"
	settings.Intervals.Kube = 30
	require.NoError(t, SaveSettings(settings))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestLoadSettingsNormalizesIntervals(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, ConfigDirName, SettingsFileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("intervals:\n  clock: 0\n  network: -3\n"), 0o644))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, 1, settings.Intervals.Clock)
	assert.Equal(t, 5, settings.Intervals.Network)
	assert.Equal(t, "wlan0", settings.NetworkInterface)
}

func TestLoadSettingsRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, ConfigDirName, SettingsFileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	_, err := LoadSettings()
	assert.Error(t, err)
}

func TestLoadThemeDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	theme, err := LoadTheme()
	require.NoError(t, err)
	assert.Equal(t, models.NewTheme(), theme)
}
