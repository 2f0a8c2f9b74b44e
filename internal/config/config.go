package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/romancalc/internal/logging"
	"gopkg.in/yaml.v3"
)

// Config holds the file paths and run options read from romancalc.yml.
// Explicitly set command-line flags override these values.
type Config struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	LogLevel string `yaml:"log_level"`
	Workers  int    `yaml:"workers"`
	History  bool   `yaml:"history"`
	// Quiet suppresses the per-line console diagnostics
	Quiet bool `yaml:"quiet"`
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return LoadFromYAML(data)
}

// LoadFromYAML parses config from YAML bytes; unset keys keep their defaults
func LoadFromYAML(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate performs config validation
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return errors.New("input path cannot be empty")
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("output path cannot be empty")
	}
	if c.Input == c.Output {
		return fmt.Errorf("input and output must differ, both are %q", c.Input)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err //nolint:wrapcheck // already names the bad level
	}
	return nil
}
