package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in each search location.
const FileName = "config.yaml"

// EnvPath names an environment variable holding a config file path. It is
// consulted after -config and before the search locations.
const EnvPath = "TERRAVIEW_CONFIG"

// Load builds the config from defaults, the first config file found and the
// command-line flags, in that order, and validates the result.
func Load() (*Config, error) {
	cfg, err := LoadFile(resolvePath())
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cfg); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFile decodes the file at path over the defaults. An empty path yields
// the defaults. Keys that match no setting are an error.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return cfg, nil
}

// SearchPaths lists the files Load tries, in order, when neither -config
// nor TERRAVIEW_CONFIG names one.
func SearchPaths() []string {
	return []string{FileName, filepath.Join(ConfigDir(), FileName)}
}

func resolvePath() string {
	if p := ConfigPath(); p != "" {
		return p
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	for _, p := range SearchPaths() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// ConfigDir returns the per-user terraview config directory, or a dot
// directory under the working directory when the OS reports none.
func ConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "terraview")
	}
	dir, _ := filepath.Abs(".terraview")
	return dir
}
