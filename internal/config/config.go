// Package config loads the mstnet YAML configuration.
//
// Load starts from Default, overlays the file (missing keys keep their default)
// and validates the result. Command-line flags are applied by the caller after
// Load, followed by another Validate.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstnet/internal/logging"
	"github.com/katalvlaran/mstnet/render"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full file shape.
type Config struct {
	Log      logging.Config `yaml:"log"`
	Generate GenerateConfig `yaml:"generate"`
	Run      RunConfig      `yaml:"run"`
}

// GenerateConfig drives `mstnet generate`.
type GenerateConfig struct {
	Seed   int64  `yaml:"seed"`
	Output string `yaml:"output"`
}

// RunConfig drives `mstnet run`.
type RunConfig struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	OutputDir   string `yaml:"output_dir"`
	Render      string `yaml:"render"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Workers     int    `yaml:"workers"`
	Verify      bool   `yaml:"verify"`
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: logging.Default(),
		Generate: GenerateConfig{
			Seed:   42,
			Output: "input_graphs.json",
		},
		Run: RunConfig{
			Input:     "input_graphs.json",
			Output:    "results.json",
			OutputDir: "visualizations",
			Render:    render.FormatPNG,
			Width:     render.DefaultWidth,
			Height:    render.DefaultHeight,
			Workers:   4,
			Verify:    true,
		},
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: log: %w", ErrInvalid, err)
	}
	if c.Generate.Output == "" {
		return fmt.Errorf("%w: generate.output is empty", ErrInvalid)
	}
	r := c.Run
	switch {
	case r.Input == "":
		return fmt.Errorf("%w: run.input is empty", ErrInvalid)
	case r.Output == "":
		return fmt.Errorf("%w: run.output is empty", ErrInvalid)
	case r.Workers < 1:
		return fmt.Errorf("%w: run.workers=%d < 1", ErrInvalid, r.Workers)
	case r.Width < 1 || r.Height < 1:
		return fmt.Errorf("%w: run canvas %dx%d", ErrInvalid, r.Width, r.Height)
	}
	if _, err := render.New(r.Render); err != nil {
		return fmt.Errorf("%w: run.render: %w", ErrInvalid, err)
	}
	if r.Render != "" && r.Render != render.FormatNone && r.OutputDir == "" {
		return fmt.Errorf("%w: run.output_dir is empty with render=%s", ErrInvalid, r.Render)
	}

	return nil
}

// Load reads path over Default and validates. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// decode overlays data on cfg and rejects unknown keys. An empty document is
// not an error.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Write stores cfg as YAML, e.g. for `mstnet config init`-style bootstrapping.
func Write(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
