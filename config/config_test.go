package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-pixelkit/geometry"
	"github.com/nvr-ai/go-pixelkit/scaling"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	mode, err := cfg.AspectMode()
	require.NoError(t, err)
	assert.Equal(t, geometry.ModeFit, mode)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative scale tolerance", func(c *Config) { c.Scale.Tolerance = -1 }},
		{"negative scaling tolerance", func(c *Config) { c.Scaling.Tolerance = -0.1 }},
		{"zero device scale", func(c *Config) { c.Scaling.DeviceScale = 0 }},
		{"negative orientation tolerance", func(c *Config) { c.Geometry.OrientationTolerance = -0.5 }},
		{"negative margin", func(c *Config) { c.Geometry.Margin = -2 }},
		{"unknown mode", func(c *Config) { c.Geometry.Mode = "stretch" }},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.True(t, errors.Is(cfg.Validate(), ErrInvalidConfig))
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixelkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
scaling:
  device_scale: 2
geometry:
  mode: fill
  margin: 4
log:
  level: debug
`), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 2.0, cfg.Scaling.DeviceScale)
	assert.Equal(t, scaling.DefaultTolerance, cfg.Scaling.Tolerance)
	assert.Equal(t, "fill", cfg.Geometry.Mode)
	assert.Equal(t, 4.0, cfg.Geometry.Margin)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 2, cfg.Metric(scaling.Device).Px(1))
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixelkit.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"geometry": {"mode": "fit", "margin": 1}}`), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Geometry.Margin)
}

func TestLoadFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("scaling: [1, 2"), 0o644))
	_, err = LoadFromFile(bad)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("geometry:\n  mode: stretch\n"), 0o644))
	_, err = LoadFromFile(invalid)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pixelkit.yaml")

	cfg := Default()
	cfg.Geometry.Mode = "fill"
	cfg.Scaling.DeviceScale = 3
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
