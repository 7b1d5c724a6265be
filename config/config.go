// package config loads the demo's TOML configuration file. Every field has a
// sensible default so the demo runs without a config file present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the root of the TOML configuration.
type Config struct {
	// LogFile is the path the logger writes to.
	LogFile string `toml:"log_file"`
	// ShaderPath is the directory containing the WGSL shader files.
	ShaderPath string `toml:"shader_path"`
	// AssetPath is the directory containing non-shader assets.
	AssetPath string `toml:"asset_path"`

	Window WindowConfig `toml:"window"`
	Camera CameraConfig `toml:"camera"`
	Light  LightConfig  `toml:"light"`
}

// WindowConfig configures the demo window.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// CameraConfig configures the fly camera's default pose and speeds.
type CameraConfig struct {
	// Speed is the translation speed in world units per second.
	Speed float32 `toml:"speed"`
	// YawSpeed is the rotation speed in degrees per second.
	YawSpeed float32 `toml:"yaw_speed"`
	// FovDegrees is the vertical field of view in degrees.
	FovDegrees float32 `toml:"fov_degrees"`
	Near       float32 `toml:"near"`
	Far        float32 `toml:"far"`
	// Position is the default camera position, restored on reset.
	Position [3]float32 `toml:"position"`
}

// LightConfig configures the scene's point light.
type LightConfig struct {
	Position [3]float32 `toml:"position"`
	Ambient  [3]float32 `toml:"ambient"`
	Diffuse  [3]float32 `toml:"diffuse"`
	Specular [3]float32 `toml:"specular"`
	// SpecularExponent controls highlight tightness (higher = tighter).
	SpecularExponent float32 `toml:"specular_exponent"`
}

// Default returns the configuration used when no config file is present.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		LogFile:    "triforce.log",
		ShaderPath: "assets/shaders",
		AssetPath:  "assets",
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Triforce",
		},
		Camera: CameraConfig{
			Speed:      3.0,
			YawSpeed:   50.0,
			FovDegrees: 67.0,
			Near:       0.1,
			Far:        100.0,
			Position:   [3]float32{0, 3, 20},
		},
		Light: LightConfig{
			Position:         [3]float32{0, 10, 5},
			Ambient:          [3]float32{0.2, 0.2, 0.2},
			Diffuse:          [3]float32{0.7, 0.7, 0.7},
			Specular:         [3]float32{1.0, 1.0, 1.0},
			SpecularExponent: 100.0,
		},
	}
}

// Load reads the TOML config at path. A missing file is not an error: the
// defaults are returned. Fields absent from the file keep their default
// values, so a config file only needs to override what it changes.
//
// Parameters:
//   - path: the config file path
//
// Returns:
//   - Config: the loaded configuration
//   - error: error if the file exists but cannot be read or parsed
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
