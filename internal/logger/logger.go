// Package logger configures the charmbracelet logger used by the CLI.
package logger

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Prefix is printed before every log line.
const Prefix = "frame"

// Config holds the logger configuration
type Config struct {
	Level      charmlog.Level
	Output     io.Writer
	JSON       bool
	TimeFormat string
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() *Config {
	return &Config{
		Level:      charmlog.InfoLevel,
		Output:     os.Stderr,
		JSON:       false,
		TimeFormat: "15:04:05",
	}
}

// New builds a logger from cfg; a nil cfg means DefaultConfig.
func New(cfg *Config) *charmlog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	logger := charmlog.NewWithOptions(cfg.Output, charmlog.Options{
		Prefix:          Prefix,
		ReportTimestamp: cfg.Level == charmlog.DebugLevel,
		TimeFormat:      cfg.TimeFormat,
		Level:           cfg.Level,
	})
	if cfg.JSON {
		logger.SetFormatter(charmlog.JSONFormatter)
	}

	return logger
}

// Discard returns a logger that drops everything; used by tests and
// library callers that do not want output.
func Discard() *charmlog.Logger {
	return charmlog.NewWithOptions(io.Discard, charmlog.Options{Level: charmlog.FatalLevel})
}
