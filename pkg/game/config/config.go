// Package config holds the game settings, read from an optional TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Game    GameConfig    `toml:"game"`
	Display DisplayConfig `toml:"display"`
	Logging LoggingConfig `toml:"logging"`
}

type GameConfig struct {
	MapFile     string `toml:"map_file"`    // empty uses the built-in ruins
	LocaleFile  string `toml:"locale_file"` // .po catalogue; empty uses English
	StartBanner bool   `toml:"start_banner"`
}

type DisplayConfig struct {
	Color      bool `toml:"color"`
	StatusLine bool `toml:"status_line"`
	Width      int  `toml:"width"` // 0 = terminal width
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Default returns the settings used when no file is given
func Default() *Config {
	return defaults()
}

// Load reads a settings file over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes TOML settings over the defaults. name is used in errors.
func Parse(data []byte, name string) (*Config, error) {
	cfg := defaults()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", name, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse config %s: unknown key %q", name, undecoded[0].String())
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			StartBanner: true,
		},
		Display: DisplayConfig{
			Color: true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}
