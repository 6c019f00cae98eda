// Package config provides configuration management for shoptui.
//
// Configuration is loaded from several sources with this precedence:
//  1. Command-line flags (highest priority)
//  2. Environment variables, including values from a .env file
//  3. Configuration file (YAML)
//  4. Default values (lowest priority)
//
// Environment Variables:
//   - SHOPTUI_PRODUCTS_URL: catalog endpoint (required)
//   - SHOPTUI_DEBUG: enable debug logging ("true"/"false")
//   - SHOPTUI_LOG_LEVEL: debug, info or error (debug wins when enabled)
//   - SHOPTUI_LOG_DIR: directory for shoptui.log (overrides platform defaults)
//
// Configuration File Format (YAML):
//
//	products_url: "https://fakestoreapi.com/products"
//	debug: false
//	log_level: "info"
//	log_dir: "~/.cache/shoptui"
//	key_bindings:
//	  next_category: "n"
//	  prev_category: "p"
//	  reset_category: "a"
//	  quit: "q"
//	theme:
//	  name: "nord"
//	  colors:
//	    accent: "green"
//
// The products URL is resolved once at startup and handed to the catalog
// client; nothing reads it from the environment afterwards.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/devnullvoid/shoptui/internal/keys"
	"github.com/devnullvoid/shoptui/internal/logger"
	"github.com/devnullvoid/shoptui/pkg/catalog"
)

const (
	// EnvPrefix is the prefix of every environment variable shoptui reads.
	EnvPrefix = "SHOPTUI"

	envProductsURL = EnvPrefix + "_PRODUCTS_URL"
	envDebug       = EnvPrefix + "_DEBUG"
	envLogDir      = EnvPrefix + "_LOG_DIR"
	envLogLevel    = EnvPrefix + "_LOG_LEVEL"

	trueString = "true"
)

// Config represents the complete application configuration.
type Config struct {
	ProductsURL string      `yaml:"products_url"`
	Debug       bool        `yaml:"debug"`
	LogLevel    string      `yaml:"log_level"`
	LogDir      string      `yaml:"log_dir"`
	KeyBindings KeyBindings `yaml:"key_bindings"`
	Theme       ThemeConfig `yaml:"theme"`
}

// KeyBindings defines customizable key mappings. Arrow keys, Tab and the
// digit keys are always active in addition to these.
type KeyBindings struct {
	NextCategory  string `yaml:"next_category"`
	PrevCategory  string `yaml:"prev_category"`
	ResetCategory string `yaml:"reset_category"`
	Quit          string `yaml:"quit"`
}

// ThemeConfig defines theme-related configuration options.
type ThemeConfig struct {
	// Name selects a built-in palette; empty means "default".
	Name string `yaml:"name"`

	// Colors overrides semantic colors by name (e.g. "accent": "green").
	// Any tcell color name or hex code is accepted.
	Colors map[string]string `yaml:"colors"`
}

// DefaultKeyBindings returns the default key mappings.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		NextCategory:  "n",
		PrevCategory:  "p",
		ResetCategory: "a",
		Quit:          "q",
	}
}

func keyBindingsToMap(kb KeyBindings) map[string]string {
	return map[string]string{
		"next_category":  kb.NextCategory,
		"prev_category":  kb.PrevCategory,
		"reset_category": kb.ResetCategory,
		"quit":           kb.Quit,
	}
}

// ValidateKeyBindings checks that every binding parses, avoids keys
// reserved for navigation, and is not bound twice.
func ValidateKeyBindings(kb KeyBindings) error {
	bindings := keyBindingsToMap(kb)
	seen := make(map[string]string)

	// Iterate in a fixed order so duplicate errors are stable.
	for _, name := range []string{"next_category", "prev_category", "reset_category", "quit"} {
		spec := bindings[name]
		if spec == "" {
			continue
		}

		key, r, mod, err := keys.Parse(spec)
		if err != nil {
			return fmt.Errorf("invalid key binding %s: %w", name, err)
		}

		if keys.IsReserved(key, r, mod) {
			return fmt.Errorf("key binding %s uses reserved key %s", name, spec)
		}

		id := keys.CanonicalID(key, r, mod)
		if other, ok := seen[id]; ok {
			return fmt.Errorf("key binding %s duplicates %s", name, other)
		}

		seen[id] = name
	}

	return nil
}

// NewConfig creates a Config holding only the built-in defaults. Sources are
// layered on top with MergeWithFile and MergeEnv.
func NewConfig() *Config {
	return &Config{KeyBindings: DefaultKeyBindings()}
}

// MergeEnv overlays every SHOPTUI_* variable that is set, so environment
// values win over the config file.
func (c *Config) MergeEnv() {
	if v, ok := os.LookupEnv(envProductsURL); ok && strings.TrimSpace(v) != "" {
		c.ProductsURL = strings.TrimSpace(v)
	}

	if v, ok := os.LookupEnv(envDebug); ok && v != "" {
		c.Debug = strings.ToLower(v) == trueString
	}

	if v, ok := os.LookupEnv(envLogDir); ok && strings.TrimSpace(v) != "" {
		c.LogDir = ExpandHomePath(v)
	}

	if v, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(v) != "" {
		c.LogLevel = strings.TrimSpace(v)
	}
}

// MergeWithFile overlays values from a YAML file. Fields absent from the
// file keep their current value.
func (c *Config) MergeWithFile(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Pointers distinguish unset from explicitly false.
	var fileConfig struct {
		ProductsURL string `yaml:"products_url"`
		Debug       *bool  `yaml:"debug"`
		LogLevel    string `yaml:"log_level"`
		LogDir      string `yaml:"log_dir"`
		KeyBindings struct {
			NextCategory  string `yaml:"next_category"`
			PrevCategory  string `yaml:"prev_category"`
			ResetCategory string `yaml:"reset_category"`
			Quit          string `yaml:"quit"`
		} `yaml:"key_bindings"`
		Theme struct {
			Name   string            `yaml:"name"`
			Colors map[string]string `yaml:"colors"`
		} `yaml:"theme"`
	}

	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if fileConfig.ProductsURL != "" {
		c.ProductsURL = strings.TrimSpace(fileConfig.ProductsURL)
	}

	if fileConfig.Debug != nil {
		c.Debug = *fileConfig.Debug
	}

	if fileConfig.LogLevel != "" {
		c.LogLevel = fileConfig.LogLevel
	}

	if fileConfig.LogDir != "" {
		c.LogDir = ExpandHomePath(fileConfig.LogDir)
	}

	if fileConfig.KeyBindings.NextCategory != "" {
		c.KeyBindings.NextCategory = fileConfig.KeyBindings.NextCategory
	}

	if fileConfig.KeyBindings.PrevCategory != "" {
		c.KeyBindings.PrevCategory = fileConfig.KeyBindings.PrevCategory
	}

	if fileConfig.KeyBindings.ResetCategory != "" {
		c.KeyBindings.ResetCategory = fileConfig.KeyBindings.ResetCategory
	}

	if fileConfig.KeyBindings.Quit != "" {
		c.KeyBindings.Quit = fileConfig.KeyBindings.Quit
	}

	if fileConfig.Theme.Name != "" {
		c.Theme.Name = fileConfig.Theme.Name
	}

	if len(fileConfig.Theme.Colors) > 0 {
		if c.Theme.Colors == nil {
			c.Theme.Colors = make(map[string]string, len(fileConfig.Theme.Colors))
		}
		for name, value := range fileConfig.Theme.Colors {
			c.Theme.Colors[name] = value
		}
	}

	return nil
}

// SetDefaults fills unspecified options.
func (c *Config) SetDefaults() {
	if c.LogDir != "" {
		c.LogDir = ExpandHomePath(c.LogDir)
	}
	if c.LogDir == "" {
		c.LogDir = getXDGCacheDir()
	}

	defaults := DefaultKeyBindings()
	if c.KeyBindings.NextCategory == "" {
		c.KeyBindings.NextCategory = defaults.NextCategory
	}

	if c.KeyBindings.PrevCategory == "" {
		c.KeyBindings.PrevCategory = defaults.PrevCategory
	}

	if c.KeyBindings.ResetCategory == "" {
		c.KeyBindings.ResetCategory = defaults.ResetCategory
	}

	if c.KeyBindings.Quit == "" {
		c.KeyBindings.Quit = defaults.Quit
	}

	if c.Theme.Colors == nil {
		c.Theme.Colors = make(map[string]string)
	}
}

// Validate checks that the configuration can start the application.
func (c *Config) Validate() error {
	if c.ProductsURL == "" {
		return errors.New("products URL required: set via --products-url flag, " + envProductsURL + " env var, .env file, or config file")
	}

	if err := catalog.ValidateEndpoint(c.ProductsURL); err != nil {
		return err
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return ValidateKeyBindings(c.KeyBindings)
}

// ExpandHomePath expands a leading ~ in paths using the current user's home directory.
func ExpandHomePath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return trimmed
	}

	if trimmed != "~" && !strings.HasPrefix(trimmed, "~/") {
		return trimmed
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return trimmed
	}

	if trimmed == "~" {
		return home
	}

	return filepath.Join(home, trimmed[2:])
}
