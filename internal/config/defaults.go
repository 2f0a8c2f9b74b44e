package config

import (
	"fmt"

	"github.com/wizzomafizzo/romancalc/internal/constants"
	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the default romancalc configuration
func DefaultConfig() *Config {
	return &Config{
		Input:    constants.DefaultInputFile,
		Output:   constants.DefaultOutputFile,
		Workers:  constants.DefaultWorkers,
		History:  true,
		LogLevel: "info",
	}
}

// DefaultConfigYAML returns the default configuration as YAML bytes
func DefaultConfigYAML() ([]byte, error) {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config to YAML: %w", err)
	}
	return data, nil
}
