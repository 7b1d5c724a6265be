package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
log_file = "demo.log"

[camera]
speed = 5.0
position = [1.0, 2.0, 3.0]

[light]
specular_exponent = 32.0
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "demo.log", cfg.LogFile)
	assert.Equal(t, float32(5.0), cfg.Camera.Speed)
	assert.Equal(t, [3]float32{1, 2, 3}, cfg.Camera.Position)
	assert.Equal(t, float32(32.0), cfg.Light.SpecularExponent)

	// Untouched fields keep their defaults.
	assert.Equal(t, Default().Camera.YawSpeed, cfg.Camera.YawSpeed)
	assert.Equal(t, Default().Window, cfg.Window)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[camera\nspeed ="), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
