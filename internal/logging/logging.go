// Package logging builds the stderr console logger.
//
// Diagnostics (debug traces, warnings) go through charmbracelet/log on
// stderr so that normal command output on stdout stays machine-friendly.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options holds configuration for console logging.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	ReportCaller    bool
	Prefix          string
}

// DefaultOptions returns the default console logging options.
func DefaultOptions() Options {
	return Options{
		Level:           log.InfoLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "tt",
	}
}

// New creates a stderr logger with the given options.
func New(opts Options) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		ReportCaller:    opts.ReportCaller,
		Prefix:          opts.Prefix,
	})
}

// NewFromConfig creates a stderr logger from string configuration values,
// as loaded from TOML or flags.
func NewFromConfig(level, format string, timestamps, caller bool) *log.Logger {
	opts := DefaultOptions()
	opts.Level = ParseLevel(level)
	opts.Formatter = ParseFormatter(format)
	opts.ReportTimestamp = timestamps
	opts.ReportCaller = caller
	return New(opts)
}

// NewForWriter creates a debug-level logger writing to w, with minimal
// formatting for easier test assertions.
func NewForWriter(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:     log.DebugLevel,
		Formatter: log.TextFormatter,
	})
}

// ParseLevel parses a string log level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a string formatter name, defaulting to text.
func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
