// Package config loads calculator settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/zephyrtronium/scicalc"
)

// Config holds calculator settings.
type Config struct {
	// Degrees selects degree mode for trigonometric functions. The calculator
	// starts in degree mode unless this is explicitly false.
	Degrees bool `toml:"degrees"`
	// Explain shows the full error text instead of "Error".
	Explain bool `toml:"explain"`
	// LogLevel is a zerolog level name.
	LogLevel string `toml:"log_level"`
	// HistoryFile is where the REPL keeps its history. Empty disables it.
	HistoryFile string `toml:"history_file"`
	// Prompt is the REPL prompt.
	Prompt string `toml:"prompt"`
}

// Default returns the settings used when there is no configuration file.
func Default() *Config {
	return &Config{
		Degrees:  true,
		LogLevel: "warn",
		Prompt:   "> ",
	}
}

// Load reads settings from a TOML file. Keys missing from the file keep
// their default values. A file that does not exist gives the defaults.
func Load(path string) (*Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return conf, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if _, err := conf.Level(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return conf, nil
}

// Mode is the configured angle mode.
func (c *Config) Mode() scicalc.AngleMode {
	if c.Degrees {
		return scicalc.Degrees
	}
	return scicalc.Radians
}

// Level parses LogLevel. An empty level is warn.
func (c *Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.WarnLevel, nil
	}
	return zerolog.ParseLevel(c.LogLevel)
}
