// Package config holds the tolerances and defaults shared by the pixelkit command line.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nvr-ai/go-pixelkit/geometry"
	"github.com/nvr-ai/go-pixelkit/scale"
	"github.com/nvr-ai/go-pixelkit/scaling"
)

// ErrInvalidConfig is returned when a configuration fails validation or cannot be read.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the tunable behaviour of the pixelkit tools.
type Config struct {
	// Scale configures the scale model checks.
	Scale ScaleConfig `json:"scale" yaml:"scale"`

	// Scaling configures scaling-factor classification.
	Scaling ScalingConfig `json:"scaling" yaml:"scaling"`

	// Geometry configures aspect sizing.
	Geometry GeometryConfig `json:"geometry" yaml:"geometry"`

	// Log configures diagnostics output.
	Log LogConfig `json:"log" yaml:"log"`
}

// ScaleConfig holds the tolerance for unscaled and integer scale checks.
type ScaleConfig struct {
	Tolerance float64 `json:"tolerance" yaml:"tolerance"`
}

// ScalingConfig holds scaling-factor classification settings.
type ScalingConfig struct {
	// Tolerance is the band around each named tier.
	Tolerance float64 `json:"tolerance" yaml:"tolerance"`

	// DeviceScale is the pixel ratio the device factor resolves to.
	DeviceScale float64 `json:"device_scale" yaml:"device_scale"`
}

// GeometryConfig holds aspect sizing settings.
type GeometryConfig struct {
	// Mode is the default aspect mode, "fit" or "fill".
	Mode string `json:"mode" yaml:"mode"`

	// OrientationTolerance is the band within which a size counts as square.
	OrientationTolerance float64 `json:"orientation_tolerance" yaml:"orientation_tolerance"`

	// Margin is the default margin applied on every edge.
	Margin float64 `json:"margin" yaml:"margin"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a slog level name: debug, info, warn or error.
	Level string `json:"level" yaml:"level"`

	// Format is "text" or "json".
	Format string `json:"format" yaml:"format"`
}

// Default returns the configuration used when no file is given.
//
// Returns:
//   - Config: Configuration with the package default tolerances
func Default() Config {
	return Config{
		Scale:   ScaleConfig{Tolerance: scale.DefaultTolerance},
		Scaling: ScalingConfig{Tolerance: scaling.DefaultTolerance, DeviceScale: 1},
		Geometry: GeometryConfig{
			Mode:                 geometry.ModeFit.String(),
			OrientationTolerance: geometry.DefaultOrientationTolerance,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// LoadFromFile reads a YAML (or JSON) configuration from path. Fields absent
// from the file keep their Default values.
//
// Arguments:
//   - path: The file to read.
//
// Returns:
//   - Config: The validated configuration.
//   - error: ErrInvalidConfig if the file cannot be read, parsed or validated.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "read %s: %v", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "parse %s: %v", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// SaveToFile writes c to path as YAML, creating parent directories as needed.
func (c Config) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}

	return errors.Wrapf(os.WriteFile(path, data, 0o644), "write %s", path)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Scale.Tolerance < 0:
		return errors.Wrapf(ErrInvalidConfig, "scale.tolerance must not be negative, got %g", c.Scale.Tolerance)
	case c.Scaling.Tolerance < 0:
		return errors.Wrapf(ErrInvalidConfig, "scaling.tolerance must not be negative, got %g", c.Scaling.Tolerance)
	case c.Scaling.DeviceScale <= 0:
		return errors.Wrapf(ErrInvalidConfig, "scaling.device_scale must be positive, got %g", c.Scaling.DeviceScale)
	case c.Geometry.OrientationTolerance < 0:
		return errors.Wrapf(ErrInvalidConfig, "geometry.orientation_tolerance must not be negative, got %g", c.Geometry.OrientationTolerance)
	case c.Geometry.Margin < 0:
		return errors.Wrapf(ErrInvalidConfig, "geometry.margin must not be negative, got %g", c.Geometry.Margin)
	}

	if _, err := geometry.ParseAspectMode(c.Geometry.Mode); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "geometry.mode: %v", err)
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.Wrapf(ErrInvalidConfig, "log.format must be text or json, got %q", c.Log.Format)
	}

	return nil
}

// AspectMode returns the parsed geometry mode.
func (c Config) AspectMode() (geometry.AspectMode, error) {
	return geometry.ParseAspectMode(c.Geometry.Mode)
}

// Metric returns a scaling metric for factor using the configured device scale.
func (c Config) Metric(factor scaling.Factor) scaling.Metric {
	return scaling.Metric{Factor: factor, DeviceScale: c.Scaling.DeviceScale}
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, errors.Wrapf(ErrInvalidConfig, "log.level: %v", err)
	}
	return level, nil
}
