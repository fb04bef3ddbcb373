package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"timetimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFileMissing(t *testing.T) {
	config, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), config)
}

func TestLoadConfigFileValues(t *testing.T) {
	path := writeConfig(t, `
default_minutes: 45
style: neon
face: duration
tick_interval_ms: 500
chime_volume: 0.5
chime_delay_ms: 250
presets: [10, 20, 30]
`)

	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 45, config.DefaultMinutes)
	assert.Equal(t, model.StyleNeon, config.Style)
	assert.Equal(t, model.FaceDuration, config.Face)
	assert.Equal(t, 500*time.Millisecond, config.TickInterval)
	assert.Equal(t, 0.5, config.ChimeVolume)
	assert.Equal(t, 250*time.Millisecond, config.ChimeDelay)
	assert.Equal(t, []int{10, 20, 30}, config.Presets)
}

func TestLoadConfigFileIgnoresInvalidFields(t *testing.T) {
	path := writeConfig(t, `
default_minutes: 500
style: baroque
face: week
tick_interval_ms: 1
chime_volume: 7
presets: [0, 90]
`)

	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	defaults := model.DefaultConfig()
	assert.Equal(t, 60, config.DefaultMinutes)
	assert.Equal(t, defaults.Style, config.Style)
	assert.Equal(t, defaults.Face, config.Face)
	assert.Equal(t, defaults.TickInterval, config.TickInterval)
	assert.Equal(t, defaults.ChimeVolume, config.ChimeVolume)
	assert.Equal(t, defaults.Presets, config.Presets)
}

func TestLoadConfigFileExplicitZeroVolume(t *testing.T) {
	path := writeConfig(t, "chime_volume: 0\n")

	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0.0, config.ChimeVolume)

	path = writeConfig(t, "style: modern\n")
	config, err = LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig().ChimeVolume, config.ChimeVolume)
}

func TestLoadConfigFileBadYaml(t *testing.T) {
	path := writeConfig(t, "style: [unterminated")

	config, err := LoadConfigFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config yaml")
	assert.Equal(t, model.DefaultConfig(), config)
}

func TestWriteDefaultConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", configFileName)
	require.NoError(t, WriteDefaultConfig(path))

	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), config)

	err = WriteDefaultConfig(path)
	require.ErrorIs(t, err, ErrConfigExists)
}
