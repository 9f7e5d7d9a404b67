// Package config loads astarviz settings from YAML. Command-line flags
// are applied on top by the cmd package.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the runtime settings.
type Config struct {
	// Rows is the board size; the grid is Rows×Rows.
	Rows int `yaml:"rows"`
	// Dimension is the display size of the board passed to the grid.
	Dimension int `yaml:"dimension"`
	// FrameDelay is the pause after each drawn search step.
	FrameDelay time.Duration `yaml:"frame_delay"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// ListenAddr is the HTTP API address used by serve.
	ListenAddr string `yaml:"listen_addr"`
	// MetricsAddr, when set, exposes /metrics while the interactive UI runs.
	MetricsAddr string `yaml:"metrics_addr"`
}

// Default returns the settings of the classic visualizer: a 50×50 board
// over a 1000-unit display.
func Default() Config {
	return Config{
		Rows:       50,
		Dimension:  1000,
		FrameDelay: 10 * time.Millisecond,
		LogLevel:   "info",
		ListenAddr: ":8080",
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read decodes YAML from r over the defaults and validates the result.
// Unknown keys are rejected.
func Read(r io.Reader) (Config, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("config: read: %w", err)
	}
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0:
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalid, c.Rows)
	case c.Dimension < 0:
		return fmt.Errorf("%w: dimension must be non-negative, got %d", ErrInvalid, c.Dimension)
	case c.FrameDelay < 0:
		return fmt.Errorf("%w: frame_delay must be non-negative, got %s", ErrInvalid, c.FrameDelay)
	}
	return nil
}
