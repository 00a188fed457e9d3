package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigFile is the config file used for a normal run.
const DefaultConfigFile = "config.yml"

// ExampleConfigFile is the bundled sample config used by demo mode.
const ExampleConfigFile = "config.example.yml"

// Load reads, parses, and validates the YAML config at path. Parse and
// validation failures are returned as *ConfigError so callers can treat them
// as fatal before any network activity starts.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("%s not found (run `galaxy-profile init` to create one)", path)}
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("parse %s: %v", path, err)}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("unmarshal %s: %v", path, err)}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
