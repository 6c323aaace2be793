// Package config loads config.yaml, the service's only external
// configuration source. A missing or malformed file is fatal at startup.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level config.yaml document.
type Config struct {
	Kraken Kraken `yaml:"kraken"`
}

// Kraken holds the depth ingestor's configuration, matching the original
// service's config.yaml shape.
type Kraken struct {
	Symbols []string `yaml:"symbols"`
	Persist string   `yaml:"persist"`
	Offline []string `yaml:"offline"`
}

// Load reads and parses path into a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Kraken.Symbols) == 0 {
		return nil, fmt.Errorf("config %s: kraken.symbols must not be empty", path)
	}
	if cfg.Kraken.Persist == "" {
		return nil, fmt.Errorf("config %s: kraken.persist must not be empty", path)
	}
	return &cfg, nil
}
