package logging

import (
	"fmt"
	"slices"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config contains logging configuration.
type Config struct {
	Level     string `yaml:"level" mapstructure:"level"`
	Format    string `yaml:"format" mapstructure:"format"`
	NoColor   bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp bool   `yaml:"timestamp" mapstructure:"timestamp"`
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = FormatConsole
	}
}

// Validate validates logging configuration.
func (c *Config) Validate() error {
	validLevels := []string{"trace", "debug", "info", "warn", "error", "disabled"}
	if !slices.Contains(validLevels, c.Level) {
		return fmt.Errorf("log.level must be one of %v (got: %s)", validLevels, c.Level)
	}
	validFormats := []string{FormatConsole, FormatJSON}
	if !slices.Contains(validFormats, c.Format) {
		return fmt.Errorf("log.format must be one of %v (got: %s)", validFormats, c.Format)
	}
	return nil
}
