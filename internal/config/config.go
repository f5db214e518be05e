package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "crate"

type Config struct {
	// Top-level view opened on start when no previous session is saved
	StartView string `koanf:"start_view" validate:"oneof=now-playing recently-played frequently-played albums artists tracks genres files radios"`

	// File browser root, empty means cwd
	MusicFolder string `koanf:"music_folder"`

	// Paths scanned into the library
	LibrarySources []string `koanf:"library_sources" validate:"dive,required"`

	// "nerd", "unicode", or "none"
	Icons string `koanf:"icons" validate:"omitempty,oneof=nerd unicode none"`

	// Recently/frequently played list length
	HistoryLimit int `koanf:"history_limit" validate:"gte=0,lte=1000"`

	Log LogConfig `koanf:"log"`
}

// LogConfig controls the file logger. The terminal is owned by the UI, so
// logs never go to stdout.
type LogConfig struct {
	Enabled bool   `koanf:"enabled"`
	Level   string `koanf:"level" validate:"oneof=debug info warn error"`
	Format  string `koanf:"format" validate:"oneof=text json logfmt"`
	File    string `koanf:"file"` // empty means $XDG_STATE_HOME/crate/crate.log
}

// Default returns the configuration used when no file sets a value.
func Default() *Config {
	return &Config{
		StartView:    "albums",
		Icons:        "unicode",
		HistoryLimit: 100,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the user and local config files.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order, later files winning.
// Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.MusicFolder = expandPath(cfg.MusicFolder)
	cfg.Log.File = expandPath(cfg.Log.File)
	for i, src := range cfg.LibrarySources {
		cfg.LibrarySources[i] = expandPath(src)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/crate/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
