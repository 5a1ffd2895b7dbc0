// Package config loads and validates atglob configuration.
//
// Precedence is flag > file > default: LoadConfig merges file values over
// DefaultConfig, and MergeWithFlags overlays explicitly set CLI flags last.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/shlex"
	"gopkg.in/yaml.v3"
)

// Config represents atglob configuration options
type Config struct {
	// Sentinel is the single character marking resolvable tokens
	Sentinel string `yaml:"sentinel"`

	// Filter is the default match filter (any, files, dirs, parent)
	Filter string `yaml:"filter"`

	// IncludeHidden includes dot-prefixed entries in searches
	IncludeHidden bool `yaml:"include_hidden"`

	// ExcludeDirs lists directory names the walker never enters
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// BaseDirectory is the search root; empty means the working directory
	BaseDirectory string `yaml:"base_directory"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Fallbacks maps a command name to launch alternatives tried in order
	// when the command itself cannot start. Entries are shell-split.
	Fallbacks map[string][]string `yaml:"fallbacks"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Sentinel:      "@",
		Filter:        "any",
		IncludeHidden: false,
		ExcludeDirs:   nil,
		BaseDirectory: "",
		LogLevel:      "warn",
		Fallbacks:     nil,
	}
}

// LoadConfig loads configuration from the specified file path.
// The file's values are merged over defaults; fields absent from the file
// keep their default. A missing file is an error: callers that want
// "missing is fine" semantics use Discover instead.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// Distinguish "sentinel: ''" from an absent key, which yaml leaves at
	// the default. An explicitly empty sentinel must fail validation.
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err == nil {
		if v, exists := raw["sentinel"]; exists && v == nil {
			cfg.Sentinel = ""
		}
	}

	return cfg, nil
}

// Discover locates and loads the configuration file. Search order:
// .atglob.yaml in dir, then $XDG_CONFIG_HOME/atglob/config.yaml, then
// ~/.config/atglob/config.yaml. If no file exists, returns defaults
// without error.
func Discover(dir string) (*Config, error) {
	for _, path := range discoveryPaths(dir) {
		if _, err := os.Stat(path); err == nil {
			return LoadConfig(path)
		}
	}
	return DefaultConfig(), nil
}

// discoveryPaths returns candidate config locations in precedence order.
func discoveryPaths(dir string) []string {
	if dir == "" {
		dir = "."
	}
	paths := []string{filepath.Join(dir, ".atglob.yaml")}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "atglob", "config.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "atglob", "config.yaml"))
	}
	return paths
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values, so flags take
// precedence over config file settings.
func (c *Config) MergeWithFlags(sentinel *string, filter *string, includeHidden *bool, excludeDirs *[]string, baseDirectory *string, logLevel *string) {
	if sentinel != nil {
		c.Sentinel = *sentinel
	}
	if filter != nil {
		c.Filter = *filter
	}
	if includeHidden != nil {
		c.IncludeHidden = *includeHidden
	}
	if excludeDirs != nil {
		c.ExcludeDirs = append(c.ExcludeDirs, *excludeDirs...)
	}
	if baseDirectory != nil {
		c.BaseDirectory = *baseDirectory
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
}

// Validate validates the configuration values.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	if len(c.Sentinel) != 1 {
		return fmt.Errorf("sentinel must be exactly one character, got %q", c.Sentinel)
	}
	if c.Sentinel == `\` {
		return fmt.Errorf(`sentinel cannot be the escape character \`)
	}

	switch c.Filter {
	case "", "any", "files", "file", "dirs", "dir", "parent":
	default:
		return fmt.Errorf("invalid filter %q, must be one of: any, files, dirs, parent", c.Filter)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	for command, chain := range c.Fallbacks {
		if command == "" {
			return fmt.Errorf("fallback entry with empty command name")
		}
		for _, entry := range chain {
			words, err := shlex.Split(entry)
			if err != nil {
				return fmt.Errorf("fallback %q: cannot split entry %q: %w", command, entry, err)
			}
			if len(words) == 0 {
				return fmt.Errorf("fallback %q: empty entry", command)
			}
		}
	}

	return nil
}
