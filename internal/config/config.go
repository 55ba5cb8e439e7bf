// Package config provides configuration management for rsx.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/rsx-cli/pkg/syntax"
)

const (
	DefaultFormat = "ansi"
	DefaultIndent = 4
	MaxIndent     = 16
)

// Validation errors.
var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrInvalidIndent = errors.New("invalid indent")
	ErrInvalidAlias  = errors.New("invalid alias")
)

// ValidFormats lists the accepted values for Format.
var ValidFormats = []string{"ansi", "html", "json", "plain"}

// Config holds the rsx configuration.
type Config struct {
	Format    string            `yaml:"format,omitempty"`
	Indent    int               `yaml:"indent,omitempty"`
	WrapMacro bool              `yaml:"wrap_macro,omitempty"`
	Aliases   map[string]string `yaml:"aliases,omitempty"`
}

// ApplyDefaults fills unset fields with their default values.
func (c *Config) ApplyDefaults() {
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Indent == 0 {
		c.Indent = DefaultIndent
	}
}

// Validate checks that every set field holds an accepted value.
func (c *Config) Validate() error {
	if c.Format != "" && !isValidFormat(c.Format) {
		return fmt.Errorf("%w %q: must be one of %s", ErrInvalidFormat, c.Format, strings.Join(ValidFormats, ", "))
	}
	if c.Indent < 0 || c.Indent > MaxIndent {
		return fmt.Errorf("%w %d: must be between 1 and %d", ErrInvalidIndent, c.Indent, MaxIndent)
	}

	for from, to := range c.Aliases {
		if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
			return fmt.Errorf("%w: alias names must not be empty", ErrInvalidAlias)
		}
	}

	// Configured aliases are applied on top of the built-in ones, so chains
	// are checked against the merged table.
	merged := c.MergedAliases()
	froms := make([]string, 0, len(merged))
	for from := range merged {
		froms = append(froms, from)
	}
	sort.Strings(froms)
	for _, from := range froms {
		to := merged[from]
		if next, chained := merged[to]; chained && to != from && next != to {
			return fmt.Errorf("%w: %q maps to %q, which is itself an alias", ErrInvalidAlias, from, to)
		}
	}

	return nil
}

// MergedAliases returns syntax.DefaultAliases overlaid with the configured
// aliases.
func (c *Config) MergedAliases() map[string]string {
	merged := make(map[string]string, len(syntax.DefaultAliases)+len(c.Aliases))
	for from, to := range syntax.DefaultAliases {
		merged[from] = to
	}
	for from, to := range c.Aliases {
		merged[from] = to
	}
	return merged
}

func isValidFormat(f string) bool {
	for _, v := range ValidFormats {
		if f == v {
			return true
		}
	}
	return false
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if format := os.Getenv("RSX_FORMAT"); format != "" {
		c.Format = format
	}
	if indent := os.Getenv("RSX_INDENT"); indent != "" {
		if n, err := strconv.Atoi(indent); err == nil {
			c.Indent = n
		}
	}
	if wrap := os.Getenv("RSX_WRAP_MACRO"); wrap != "" {
		if b, err := strconv.ParseBool(wrap); err == nil {
			c.WrapMacro = b
		}
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "rsx", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".rsx", "config.yml")
	}

	return filepath.Join(home, ".config", "rsx", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file, overrides it with environment
// variables and fills in defaults. A missing file is not an error.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	cfg.ApplyDefaults()
	return cfg, nil
}
