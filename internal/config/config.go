// Package config handles configuration loading and defaults.
//
// Values are layered in priority order: built-in defaults, then a project
// config file (tt.toml or .tt.toml in the working directory), then CLI
// flags. Environment variables are deliberately not consulted.
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultDataFile  = "tasks.tsv"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for tt.
type Config struct {
	// DataFile is the task data file, relative paths resolve against the
	// working directory.
	DataFile string `toml:"data_file"`

	// Logging configuration for stderr diagnostics.
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// ProjectRoot is the working directory (computed).
	ProjectRoot string `toml:"-"`

	// ConfigFile is the project config file that was loaded, if any
	// (computed).
	ConfigFile string `toml:"-"`
}

// Load builds the configuration: defaults, then the project config file if
// one exists, then flags registered on fs. The flag set is parsed here, so
// callers read subcommand arguments from fs.Args afterwards.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path := findProjectConfigFile(); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
	}

	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, err
	}

	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.DataFile = DefaultDataFile
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// findProjectConfigFile looks for a config file in the current directory.
func findProjectConfigFile() string {
	for _, name := range []string{"tt.toml", ".tt.toml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// parseFlags defines and parses CLI flags, which override everything.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("tt", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.DataFile, "file", cfg.DataFile, "Path to the task data file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}
	return nil
}

// finalize computes derived values.
func finalize(cfg *Config) error {
	if cfg.ProjectRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfg.ProjectRoot = wd
	}

	if !filepath.IsAbs(cfg.DataFile) {
		cfg.DataFile = filepath.Join(cfg.ProjectRoot, cfg.DataFile)
	}
	return nil
}
