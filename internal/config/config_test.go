package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "builder.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadBuilder_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadBuilder(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultBuilder(), cfg)
}

func TestLoadBuilder(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
validate: true
presets:
  - name: tower
    size_x: 5
    size_y: 120
    size_z: 5
  - name: slab
    size_x: 32
    size_y: 1
    size_z: 32
`)

	cfg, err := LoadBuilder(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Validate)
	require.Len(t, cfg.Presets, 2)
	assert.Equal(t, Preset{Name: "tower", SizeX: 5, SizeY: 120, SizeZ: 5}, cfg.Presets[0])
	assert.Equal(t, "slab", cfg.Presets[1].Name)
}

func TestLoadBuilder_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "validate: true\n")

	cfg, err := LoadBuilder(path)
	require.NoError(t, err)

	assert.True(t, cfg.Validate)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultBuilder().Presets, cfg.Presets)
}

func TestLoadBuilder_ParseError(t *testing.T) {
	path := writeConfig(t, "presets: [unterminated\n")

	_, err := LoadBuilder(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadBuilder_ReadError(t *testing.T) {
	// A directory cannot be read as a file.
	_, err := LoadBuilder(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}
