package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a parameter sweep.
type Config struct {
	// Parameters maps parameter names to the values to sweep. The sweep
	// covers the cartesian product of all lists; an empty map means a single
	// run with no parameters.
	Parameters map[string][]any `yaml:"parameters"`
	// Iterations repeats every parameter combination (default 1).
	Iterations int `yaml:"iterations"`
	// MaxSteps bounds each run. Zero means runs only end when the model
	// stops itself.
	MaxSteps int `yaml:"max_steps"`
	// Concurrency bounds the number of runs in flight. Zero means no bound.
	Concurrency int `yaml:"concurrency"`
}

// DefaultConfig returns a single-iteration, unbounded-concurrency sweep.
func DefaultConfig() *Config {
	return &Config{Iterations: 1}
}

// LoadConfig reads and parses a YAML sweep description.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read config: %w", err)
	}
	return ParseConfig(b)
}

// ParseConfig parses a YAML sweep description.
func ParseConfig(b []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("batch: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the sweep description for impossible settings.
func (c *Config) Validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("batch: iterations must be at least 1, got %d", c.Iterations)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("batch: max_steps must not be negative, got %d", c.MaxSteps)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("batch: concurrency must not be negative, got %d", c.Concurrency)
	}
	for name, values := range c.Parameters {
		if len(values) == 0 {
			return fmt.Errorf("batch: parameter %q has no values", name)
		}
	}
	return nil
}
