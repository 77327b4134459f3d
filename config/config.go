// Package config provides configuration loading and access for the
// simulation: an embedded-defaults/user-override YAML record merged with
// CLI flag overrides.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrConfig wraps configuration errors: unparseable YAML, invalid flag
// values, or a config record that fails Validate.
var ErrConfig = errors.New("config")

// Engine selects which orchestrator drives the per-step pipeline.
type Engine string

const (
	EngineTree       Engine = "tree"
	EnginePthread    Engine = "pthread"
	EngineRayon      Engine = "rayon"
	EngineRayonTree  Engine = "rayon_tree"
	EngineMPINormal  Engine = "mpi_normal"
	EngineMPIOpenMP  Engine = "mpi_openmp"
	EngineBruteForce Engine = "brute_force"
	EngineOpenMP     Engine = "openmp"
)

func (e Engine) valid() bool {
	switch e {
	case EngineTree, EnginePthread, EngineRayon, EngineRayonTree,
		EngineMPINormal, EngineMPIOpenMP, EngineBruteForce, EngineOpenMP:
		return true
	}
	return false
}

// Mode selects whether the orchestrator times a fixed run of steps, each
// printed and recorded (benchmark), or drives the render loop (display).
type Mode string

const (
	ModeBenchmark Mode = "benchmark"
	ModeDisplay   Mode = "display"
)

func (m Mode) valid() bool {
	return m == ModeBenchmark || m == ModeDisplay
}

// Config holds every recognised CLI option (spec §6).
type Config struct {
	Engine Engine  `yaml:"engine"`
	Width  uint    `yaml:"width"`
	Height uint    `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	Number uint    `yaml:"number"`
	Thread uint    `yaml:"thread"`
	Mode   Mode    `yaml:"mode"`
	FPS    bool    `yaml:"fps"`
}

// WorldWidth returns the world rectangle width in world units
// (display width / scale).
func (c *Config) WorldWidth() float64 { return float64(c.Width) / c.Scale }

// WorldHeight returns the world rectangle height in world units.
func (c *Config) WorldHeight() float64 { return float64(c.Height) / c.Scale }

// Validate reports whether every field holds a value the orchestrator can
// act on.
func (c *Config) Validate() error {
	if !c.Engine.valid() {
		return fmt.Errorf("%w: unrecognised engine %q", ErrConfig, c.Engine)
	}
	if !c.Mode.valid() {
		return fmt.Errorf("%w: unrecognised mode %q", ErrConfig, c.Mode)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale must be > 0, got %v", ErrConfig, c.Scale)
	}
	if c.Thread == 0 {
		return fmt.Errorf("%w: thread must be > 0", ErrConfig)
	}
	return nil
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, merges it over the
// embedded defaults, applies CLI overrides, validates the result, and
// stores it for Cfg. Must be called before Cfg().
func Init(path string, cli CLIOptions) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	cli.ApplyTo(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing embedded defaults: %v", ErrConfig, err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: reading config file: %v", ErrConfig, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: parsing config file: %v", ErrConfig, err)
		}
	}

	return cfg, nil
}
