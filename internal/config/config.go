// Package config provides configuration management for the tint CLI.
// It loads configuration from environment variables with sensible defaults,
// plus an optional YAML palette file of user-named styles.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mossrock/tint/internal/sgr"
)

// Config holds all configuration for the tint CLI
type Config struct {
	// PalettePath is the YAML palette file the styles were loaded from.
	// Empty when only built-in styles are available.
	PalettePath string

	// Plain disables styling regardless of flags (TINT_PLAIN or NO_COLOR)
	Plain bool

	// Styles maps style names to attribute sequences. Built-in styles are
	// always present; palette entries may shadow them.
	Styles map[string][]sgr.Attribute
}

// paletteFile mirrors the on-disk layout of a palette file
type paletteFile struct {
	Styles map[string][]string `yaml:"styles"`
}

// Load creates a new Config instance from environment variables and the
// palette file, when one is configured or present at the default location.
func Load() (*Config, error) {
	cfg := &Config{
		Styles: builtinStyles(),
	}

	// TINT_PLAIN - defaults to false; NO_COLOR implies it
	plain, err := parseBoolEnv("TINT_PLAIN", false)
	if err != nil {
		return nil, err
	}
	cfg.Plain = plain || os.Getenv("NO_COLOR") != ""

	// Palette path - an explicit TINT_PALETTE must exist; the default
	// location is optional
	path, explicit := os.LookupEnv("TINT_PALETTE")
	if explicit {
		if path == "" {
			return nil, fmt.Errorf("TINT_PALETTE cannot be empty")
		}
	} else {
		path = defaultPalettePath()
		if path == "" {
			return cfg, nil
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return cfg, nil
		}
	}

	if err := cfg.loadPalette(path); err != nil {
		return nil, err
	}
	cfg.PalettePath = path

	return cfg, nil
}

// loadPalette merges the named styles from a YAML palette file into the
// config, resolving each attribute name through the sgr package.
func (c *Config) loadPalette(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read palette file: %w", err)
	}

	var file paletteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse palette file %s: %w", path, err)
	}

	for name, attrNames := range file.Styles {
		attrs := make([]sgr.Attribute, 0, len(attrNames))
		for _, attrName := range attrNames {
			attr, err := sgr.ParseAttribute(attrName)
			if err != nil {
				return fmt.Errorf("palette style %q: %w", name, err)
			}
			attrs = append(attrs, attr)
		}
		c.Styles[name] = attrs
	}

	return nil
}

// builtinStyles returns the eight standard bold/plain color compositions
func builtinStyles() map[string][]sgr.Attribute {
	return map[string][]sgr.Attribute{
		"red":         {sgr.FgRed},
		"green":       {sgr.FgGreen},
		"yellow":      {sgr.FgYellow},
		"blue":        {sgr.FgBlue},
		"bold-red":    {sgr.Bold, sgr.FgRed},
		"bold-green":  {sgr.Bold, sgr.FgGreen},
		"bold-yellow": {sgr.Bold, sgr.FgYellow},
		"bold-blue":   {sgr.Bold, sgr.FgBlue},
	}
}

// defaultPalettePath returns the conventional palette location, or empty
// when no config directory can be determined.
func defaultPalettePath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "tint", "palette.yaml")
}

// parseBoolEnv parses a boolean environment variable with a default value
func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	switch value {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%s must be true or false, got: %s", key, value)
	}
}
