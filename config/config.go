// Package config loads service configuration from defaults, an optional
// YAML file, and environment variables, in increasing priority.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	envprovider "github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Load loads configuration with priority:
// 1. Environment variables (highest)
// 2. The YAML file at path, when it exists
// 3. Default values (lowest)
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	if err := k.Load(envprovider.Provider("", ".", func(s string) string {
		// Map UPPER_CASE environment names onto lower.case koanf keys.
		return strings.ReplaceAll(strings.ToLower(s), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	return unmarshal(k)
}

// Parse loads configuration from in-memory YAML over the defaults. It is
// the embedding-friendly variant of Load; environment variables are not
// consulted.
func Parse(raw []byte) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if err := k.Load(rawbytes.Provider(raw), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"app.name": "mozlog-service",
		"app.env":  "development",

		"server.host":        "0.0.0.0",
		"server.port":        8080,
		"server.path.health": "/health",
		"server.path.ready":  "/ready",

		"log.level":       "info",
		"log.requiretype": "",
		"log.hostname":    "os",

		"location.database": "",
	}

	return k.Load(confmap.Provider(defaults, "."), nil)
}

// Validate checks structural constraints on the configuration.
func Validate(cfg *Config) error {
	return validator.New().Struct(cfg)
}
