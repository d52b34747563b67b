// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/cmdshell/lib/message"
	"github.com/bureau-foundation/cmdshell/lib/output"
	"github.com/bureau-foundation/cmdshell/lib/shell"
	"github.com/bureau-foundation/cmdshell/lib/token"
)

// EnvironmentVariable names the variable [Load] reads the config path
// from.
const EnvironmentVariable = "CMDSHELL_CONFIG"

// Config holds the settings of one shell session.
type Config struct {
	// Prompt is shown before each interactive statement.
	// Default: "> "
	Prompt string `yaml:"prompt" json:"prompt"`

	// Indent is the base indentation of command output in columns.
	// Default: 2
	Indent int `yaml:"indent" json:"indent"`

	// Color selects styled output: "auto", "always" or "never".
	// Default: auto
	Color string `yaml:"color" json:"color"`

	// LogLevel is the minimum level of diagnostic logging written to
	// stderr: debug, info, warn or error.
	// Default: warn
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Messages overrides individual message templates. Unset
	// templates keep their defaults.
	Messages message.Templates `yaml:"messages" json:"messages"`

	// Aliases maps alias names to command paths, for example
	// "st: service status".
	Aliases map[string]string `yaml:"aliases" json:"aliases"`

	// Identifiers maps $name identifiers to integer values, written
	// in decimal or 0x hexadecimal.
	Identifiers map[string]string `yaml:"identifiers" json:"identifiers"`

	// Startup lists expressions executed before the first prompt.
	Startup []string `yaml:"startup" json:"startup"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Prompt:   "> ",
		Indent:   output.DefaultIndent,
		Color:    string(output.ColorAuto),
		LogLevel: "warn",
	}
}

// Load loads configuration from the CMDSHELL_CONFIG environment
// variable. If the variable is not set, this fails; callers that want
// defaults use [Default] instead.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your config file, or use --config flag", EnvironmentVariable)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, on top of
// the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg.expandVariables()

	return cfg, nil
}

// loadFile merges a single configuration file into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return json.Unmarshal(jsonc.ToJSON(data), c)
	default:
		return yaml.Unmarshal(data, c)
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in the
// prompt and startup statements.
func (c *Config) expandVariables() {
	c.Prompt = expandVars(c.Prompt)
	for index, statement := range c.Startup {
		c.Startup[index] = expandVars(statement)
	}
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns from the
// environment.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Indent < 0 {
		errs = append(errs, fmt.Errorf("indent must not be negative, got %d", c.Indent))
	}

	if _, err := output.ParseColorMode(c.Color); err != nil {
		errs = append(errs, err)
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	if err := c.Messages.Validate(); err != nil {
		errs = append(errs, err)
	}

	for name, path := range c.Aliases {
		if name == "" || strings.ContainsAny(name, " \t;") {
			errs = append(errs, fmt.Errorf("alias %q: name must be a single word", name))
		}
		if strings.TrimSpace(path) == "" {
			errs = append(errs, fmt.Errorf("alias %q: command path is empty", name))
		}
	}

	if _, err := c.identifierValues(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// ColorMode returns the parsed colour setting.
func (c *Config) ColorMode() (output.ColorMode, error) {
	return output.ParseColorMode(c.Color)
}

// Catalog returns a message catalog with this config's overrides.
func (c *Config) Catalog() *message.Catalog {
	return message.New(c.Messages)
}

func (c *Config) identifierValues() (map[string]uint64, error) {
	values := make(map[string]uint64, len(c.Identifiers))
	var errs []error
	for name, text := range c.Identifiers {
		value, ok := token.New(text).Uint64()
		if !ok {
			errs = append(errs, fmt.Errorf("identifier %q: %q is not an integer", name, text))
			continue
		}
		values[name] = value
	}
	return values, errors.Join(errs...)
}

// Apply installs the configured identifiers and aliases on sh. Call
// it after the command tree is built so alias paths can resolve.
// Aliases whose path does not name exactly one command are skipped
// and reported in the returned error; the rest are still installed.
func (c *Config) Apply(sh *shell.Shell) error {
	values, err := c.identifierValues()
	if err != nil {
		return err
	}
	for name, value := range values {
		sh.SetIdentifier(name, value)
	}

	var errs []error
	for _, name := range slices.Sorted(maps.Keys(c.Aliases)) {
		path := c.Aliases[name]
		resolution := sh.Resolve(path)
		if resolution.State != shell.Resolved || !resolution.Tokens.Empty() {
			errs = append(errs, fmt.Errorf("alias %q: %q does not name a command", name, path))
			continue
		}
		sh.AliasAdd(resolution.Node, name)
	}
	return errors.Join(errs...)
}
