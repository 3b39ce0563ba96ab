// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/Faultbox/terraview/internal/engine/camera"
	"github.com/Faultbox/terraview/internal/engine/terrain"
	"github.com/Faultbox/terraview/pkg/math"
	"github.com/Faultbox/terraview/pkg/noise"
)

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Camera   CameraConfig   `yaml:"camera"`
	Renderer RendererConfig `yaml:"renderer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TerrainConfig holds the initial terrain parameters and the editing limits.
// A seed of 0 picks a random seed at startup.
type TerrainConfig struct {
	Seed         uint32         `yaml:"seed"`
	Size         float32        `yaml:"size"`
	Subdivisions uint32         `yaml:"subdivisions"`
	Noise        string         `yaml:"noise"`
	Limits       terrain.Limits `yaml:"limits"`
}

// Parameters returns the configured terrain parameters.
func (t TerrainConfig) Parameters() terrain.Parameters {
	return terrain.Parameters{Seed: t.Seed, Size: t.Size, Subdivisions: t.Subdivisions}
}

// CameraConfig holds the initial camera state and its input tuning.
type CameraConfig struct {
	Orbit     camera.OrbitCamera `yaml:"orbit"`
	Tuning    camera.Tuning      `yaml:"tuning"`
	UserInput bool               `yaml:"user_input"` // false leaves the camera fixed
}

// RendererConfig holds rendering settings.
type RendererConfig struct {
	Wireframe    bool        `yaml:"wireframe"`
	FOV          float32     `yaml:"fov"` // vertical, degrees
	Near         float32     `yaml:"near"`
	Far          float32     `yaml:"far"`
	ClearColor   [4]float32  `yaml:"clear_color"`
	TerrainColor [3]float32  `yaml:"terrain_color"`
	Light        LightConfig `yaml:"light"`
}

// LightConfig holds the scene's point light.
type LightConfig struct {
	Position  math.Vec3 `yaml:"position"`
	Intensity float32   `yaml:"intensity"`
	Range     float32   `yaml:"range"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`

	// DiagnosticsInterval is how often frame statistics are logged. Zero
	// disables diagnostics logging.
	DiagnosticsInterval time.Duration `yaml:"diagnostics_interval"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	params := terrain.DefaultParameters()
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Terrain: TerrainConfig{
			Seed:         params.Seed,
			Size:         params.Size,
			Subdivisions: params.Subdivisions,
			Noise:        string(noise.KindPerlin),
			Limits:       terrain.DefaultLimits(),
		},
		Camera: CameraConfig{
			Orbit:     *camera.NewOrbitCamera(),
			Tuning:    camera.DefaultTuning(),
			UserInput: true,
		},
		Renderer: RendererConfig{
			Wireframe:    false,
			FOV:          45,
			Near:         0.1,
			Far:          1000,
			ClearColor:   [4]float32{0.1, 0.1, 0.15, 1},
			TerrainColor: [3]float32{0, 1, 0},
			Light: LightConfig{
				Position:  math.Vec3{X: 0, Y: 10, Z: 0},
				Intensity: 1500,
				Range:     20,
			},
		},
		Logging: LoggingConfig{
			Level:               "info",
			LogFile:             "",
			DiagnosticsInterval: time.Second,
		},
	}
}

// Validate checks the settings that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: invalid size %dx%d", c.Window.Width, c.Window.Height))
	}

	lim := c.Terrain.Limits
	if lim.MaxSize <= 0 || lim.MaxSubdivisions < max(lim.MinSubdivisions, 1) ||
		lim.MaxSubdivisions > terrain.MaxIndexableSubdivisions {
		errs = append(errs, fmt.Errorf("terrain: invalid limits %+v", lim))
	} else if err := lim.Check(c.Terrain.Parameters()); err != nil {
		errs = append(errs, fmt.Errorf("terrain: %w", err))
	}
	if _, err := noise.ParseKind(c.Terrain.Noise); err != nil {
		errs = append(errs, fmt.Errorf("terrain: %w", err))
	}

	if !(c.Renderer.Near > 0) || c.Renderer.Far <= c.Renderer.Near {
		errs = append(errs, fmt.Errorf("renderer: invalid clip range [%v, %v]", c.Renderer.Near, c.Renderer.Far))
	}
	if c.Renderer.FOV <= 0 || c.Renderer.FOV >= 180 {
		errs = append(errs, fmt.Errorf("renderer: invalid fov %v", c.Renderer.FOV))
	}

	return errors.Join(errs...)
}
