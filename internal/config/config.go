// Package config loads lazycat configuration from flags, environment
// variables, an optional .env file and an optional YAML config file.
package config

import (
	"errors"
	"fmt"

	"github.com/charmingruby/lazyseq/internal/logging"
)

// StdinInput selects standard input as the input.
const StdinInput = "-"

// Config is the lazycat configuration.
type Config struct {
	Input   string         `yaml:"input" mapstructure:"input"`
	Index   []int          `yaml:"index" mapstructure:"index"`
	Head    int            `yaml:"head" mapstructure:"head"`
	Slice   string         `yaml:"slice" mapstructure:"slice"`
	Reverse bool           `yaml:"reverse" mapstructure:"reverse"`
	Count   bool           `yaml:"count" mapstructure:"count"`
	Log     logging.Config `yaml:"log" mapstructure:"log"`
}

// ApplyDefaults applies default values.
func (c *Config) ApplyDefaults() {
	if c.Input == "" {
		c.Input = StdinInput
	}
	c.Log.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Head < 0 {
		return fmt.Errorf("head must not be negative (got: %d)", c.Head)
	}
	if c.Head > 0 && c.Slice != "" {
		return errors.New("head and slice are mutually exclusive")
	}
	return c.Log.Validate()
}
