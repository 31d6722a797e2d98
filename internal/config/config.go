package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"function-frame/internal/directive"
)

// DefaultFile is the project file looked up when none is given.
const DefaultFile = ".frame.yaml"

// Config is the root of a project file.
type Config struct {
	// Marker is the directive name, written as //<marker> in doc comments.
	Marker string `yaml:"marker,omitempty"`

	// Exclude lists doublestar globs of files that are never rewritten,
	// matched against slash-separated paths.
	Exclude []string `yaml:"exclude,omitempty"`

	// Output is the directory rewritten files go to. Empty means stdout,
	// or in place when writing is requested.
	Output string `yaml:"output,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`

	// LogFormat is text (the default) or json.
	LogFormat string `yaml:"log_format,omitempty"`
}

// Supported log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Default returns the configuration used when no project file exists.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// LoadFile loads and parses a project file from fsys. A missing file
// yields the defaults when optional is set.
func LoadFile(fsys afero.Fs, path string, optional bool) (*Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var c Config

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Marker == "" {
		c.Marker = directive.DefaultMarker
	}

	if c.LogLevel == "" {
		c.LogLevel = log.InfoLevel.String()
	}

	if c.LogFormat == "" {
		c.LogFormat = LogFormatText
	}
}

// Validate checks the log settings and the exclude globs.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}

	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("invalid log_format %q: expected %s or %s", c.LogFormat, LogFormatText, LogFormatJSON)
	}

	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	return lvl, nil
}

// Excluded reports whether path matches one of the exclude globs.
func (c *Config) Excluded(path string) bool {
	slashed := filepath.ToSlash(path)

	for _, pattern := range c.Exclude {
		if ok, _ := doublestar.Match(pattern, slashed); ok {
			return true
		}
	}

	return false
}
