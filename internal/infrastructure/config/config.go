// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/dilation-core/internal/domain/entities"
)

const (
	// DefaultConfigDir is the directory name for dilation configuration.
	DefaultConfigDir = ".dilation"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
)

// Config holds presentation defaults (read-only after init). Physics
// constants and formatter thresholds are fixed in the engine and are not
// configurable.
type Config struct {
	Output OutputConfig `yaml:"output,omitempty"`
	Log    LogConfig    `yaml:"log,omitempty"`
}

// OutputConfig holds defaults for rendering results.
type OutputConfig struct {
	// DefaultUnit is used when no --unit flag is given.
	DefaultUnit string `yaml:"default_unit,omitempty"`
	// Format selects "text" or "json" output.
	Format string `yaml:"format,omitempty"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Pretty bool   `yaml:"pretty,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultUnit: string(entities.UnitSeconds),
			Format:      "text",
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}

// Load loads configuration from the .dilation directory in the given path.
// A missing config file is not an error; defaults apply, so the calculator
// works without running 'dilation init' first.
func Load(basePath string) (*Config, error) {
	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		cfg := Default()
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("DILATION_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if format := os.Getenv("DILATION_OUTPUT_FORMAT"); format != "" {
		c.Output.Format = format
	}
}

// validate checks the fields that feed directly into parsing and rendering.
func (c *Config) validate() error {
	if _, err := entities.ParseTimeUnit(c.Output.DefaultUnit); err != nil {
		return fmt.Errorf("invalid default_unit: %w", err)
	}
	if c.Output.Format != "text" && c.Output.Format != "json" {
		return fmt.Errorf("invalid output format %q (valid: text, json)", c.Output.Format)
	}
	return nil
}

// ConfigDir returns the path to the .dilation config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}
