// Package passconfig loads the variance pass's solver and diagnostic
// configuration from a YAML file, in the shape funxy's own ext.Config
// loads funxy.yaml: a plain struct with yaml tags, a Load entry point,
// and a validate step run right after unmarshalling.
package passconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level variance.yaml configuration.
type Config struct {
	// Solver tunes the fixed-point solver's termination behavior.
	Solver SolverConfig `yaml:"solver"`

	// Diagnostics toggles which non-fatal diagnostics the pass emits.
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
}

// SolverConfig overrides the solver's size-derived iteration cap (spec
// §4.5, §9's "defense-in-depth assertion").
type SolverConfig struct {
	// MaxIterations overrides the default iteration cap. Zero means
	// "use the size-derived default".
	MaxIterations int `yaml:"max_iterations,omitempty"`
}

// DiagnosticsConfig toggles the test-only debug hook of spec §4.6.
type DiagnosticsConfig struct {
	// EnableDebugHook turns on the rustc_variance marker-attribute
	// report. Defaults to false: production builds shouldn't pay for it.
	EnableDebugHook bool `yaml:"enable_debug_hook,omitempty"`
}

// Load reads and parses a variance.yaml file from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses variance.yaml content from bytes. path is used only for
// error messages.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate(path string) error {
	if c.Solver.MaxIterations < 0 {
		return fmt.Errorf("%s: solver.max_iterations must not be negative, got %d", path, c.Solver.MaxIterations)
	}
	return nil
}
