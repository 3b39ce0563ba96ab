package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
)

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed     = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen   = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth        = flag.Int("width", 0, "Window width")
	flagHeight       = flag.Int("height", 0, "Window height")
	flagSeed         = flag.Int64("seed", -1, "Terrain seed (0 picks a random seed)")
	flagSize         = flag.Float64("size", 0, "Terrain side length")
	flagSubdivisions = flag.Int64("subdivisions", 0, "Terrain cells per side")
	flagNoise        = flag.String("noise", "", "Noise backend (perlin, opensimplex)")
	flagWireframe    = flag.Bool("wireframe", false, "Start in wireframe mode")
)

// ErrFlagRange is returned when a numeric flag does not fit its setting.
var ErrFlagRange = errors.New("flag value out of range")

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagSeed != -1 {
		seed, err := uint32Flag("seed", *flagSeed)
		if err != nil {
			return err
		}
		cfg.Terrain.Seed = seed
	}
	if *flagSize != 0 {
		cfg.Terrain.Size = float32(*flagSize)
	}
	if *flagSubdivisions != 0 {
		n, err := uint32Flag("subdivisions", *flagSubdivisions)
		if err != nil {
			return err
		}
		cfg.Terrain.Subdivisions = n
	}
	if *flagNoise != "" {
		cfg.Terrain.Noise = *flagNoise
	}
	if *flagWireframe {
		cfg.Renderer.Wireframe = true
	}
	return nil
}

func uint32Flag(name string, v int64) (uint32, error) {
	if v < 0 || v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: -%s %d not in [0, %d]", ErrFlagRange, name, v, uint32(math.MaxUint32))
	}
	return uint32(v), nil
}
