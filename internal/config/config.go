// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/htmlpatch/internal/schemas"
)

// EnvConfigPath names the environment variable holding a default config path.
const EnvConfigPath = "HTMLPATCH_CONFIG"

// DefaultHosts are the site hosts whose absolute links map onto local pages.
var DefaultHosts = []string{"unkode-mania.net", "www.unkode-mania.net"}

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	Hosts   []string `json:"hosts,omitempty" validate:"omitempty,min=1,dive,hostname|hostname_port"` // Hosts treated as the site itself
	Verbose bool     `json:"verbose,omitempty"`                                                   // Print match tracing to stderr
	JSON    bool     `json:"json,omitempty"`                                                      // Print the summary as JSON
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Hosts: append([]string(nil), DefaultHosts...)}
}

// LoadConfig loads configuration from a JSON file.
// The content is checked against the config schema before it is decoded.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := schemas.ValidateJSONString(schemas.ConfigSchema, string(data)); err != nil {
		return nil, fmt.Errorf("config file %s does not match schema: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if len(result.Hosts) == 0 {
		result.Hosts = append([]string(nil), defaults.Hosts...)
	}

	// Bool fields: cannot distinguish unset from false, so a true on either
	// side wins
	result.Verbose = result.Verbose || defaults.Verbose
	result.JSON = result.JSON || defaults.JSON

	return result
}

// Resolve loads the config named by path, falling back to the
// HTMLPATCH_CONFIG environment variable, and merges it over the defaults.
// With neither set it returns the defaults.
func Resolve(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return Default(), nil
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return Config{}, err
	}
	return cfg.MergeWithDefaults(Default()), nil
}
