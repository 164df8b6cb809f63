package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultDataPath is where consumption data lives when no override is set.
const DefaultDataPath = "consumption_data.json"

// Config represents the optional ecotrack.yaml configuration. The defaults
// reproduce the tracker's stock behavior, so the file is only needed to
// override something.
type Config struct {
	DataPath  string  `yaml:"data_path"`
	Threshold float64 `yaml:"threshold"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		DataPath:  DefaultDataPath,
		Threshold: 100,
	}
}

// Load reads an ecotrack.yaml file from disk. A missing file yields the
// default configuration rather than an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
