package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LAZYCAT"

// ErrHelp is returned by Load when help was requested.
var ErrHelp = pflag.ErrHelp

// LoaderConfig holds optional overrides for Load.
type LoaderConfig struct {
	Output     io.Writer
	ConfigFile string
	EnvFile    string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithOutput sets where usage and flag errors are printed.
func WithOutput(w io.Writer) LoaderOption {
	return func(lc *LoaderConfig) { lc.Output = w }
}

// WithConfigFile sets a config file path used when --config is not given.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets a .env file path used when --env-file is not given.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load parses args and merges, from lowest to highest precedence, the config
// file, the .env file, LAZYCAT_* environment variables and flags. The first
// positional argument is the input path.
func Load(args []string, opts ...LoaderOption) (*Config, error) {
	lc := LoaderConfig{Output: os.Stderr}
	for _, opt := range opts {
		opt(&lc)
	}

	fs := newFlagSet(lc.Output)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if path, _ := fs.GetString("config"); path != "" {
		lc.ConfigFile = path
	}
	if path, _ := fs.GetString("env-file"); path != "" {
		lc.EnvFile = path
	}

	v := viper.New()
	v.SetDefault("input", StdinInput)
	v.SetDefault("log.no_color", false)
	v.SetDefault("log.timestamp", false)

	// 1. YAML config file
	if lc.ConfigFile != "" {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", lc.ConfigFile, err)
		}
	}

	// 2. .env file; variables already in the environment win
	if err := loadEnvFile(lc.EnvFile); err != nil {
		return nil, err
	}

	// 3. environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// 4. flags
	if err := bindFlags(v, fs); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		v.Set("input", fs.Arg(0))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func newFlagSet(output io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("lazycat", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "Usage: lazycat [flags] [file]")
		fs.PrintDefaults()
	}
	fs.String("config", "", "YAML config file")
	fs.String("env-file", "", ".env file (default: ./.env when present)")
	fs.IntSlice("index", nil, "print line N; negative counts from the end (repeatable)")
	fs.Int("head", 0, "print the first N lines")
	fs.String("slice", "", "print lines selected by start:stop[:step]")
	fs.Bool("reverse", false, "reverse the lines before selecting")
	fs.Bool("count", false, "print the number of lines")
	fs.String("log-level", "", "log level (trace, debug, info, warn, error, disabled)")
	fs.String("log-format", "", "log format (console, json)")
	fs.Bool("log-no-color", false, "disable colored console logs")
	return fs
}

// bindFlags maps flag names to config keys.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	keys := map[string]string{
		"index":        "index",
		"head":         "head",
		"slice":        "slice",
		"reverse":      "reverse",
		"count":        "count",
		"log-level":    "log.level",
		"log-format":   "log.format",
		"log-no-color": "log.no_color",
	}
	for flag, key := range keys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	return nil
}

func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
