// File: config.go
// Title: Application Configuration
// Description: Loads the mGW configuration from a TOML or YAML file,
//              auto-detected by extension, with MGW_* environment
//              variable overrides. A missing configuration file is not
//              an error; defaults apply.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial configuration implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultPath is consulted when no --config flag is given
const DefaultPath = "./configs/config.toml"

// Config holds all mGW settings
type Config struct {
	Log     LogConfig     `toml:"log" yaml:"log"`
	History HistoryConfig `toml:"history" yaml:"history"`
	Plot    PlotConfig    `toml:"plot" yaml:"plot"`
}

// LogConfig configures the logger
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "text" or "json"
}

// HistoryConfig configures the plot history store
type HistoryConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Path    string `toml:"path" yaml:"path"`
}

// PlotConfig configures rendering defaults
type PlotConfig struct {
	DefaultZoom float64 `toml:"default_zoom" yaml:"default_zoom"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "./data/history.db",
		},
		Plot: PlotConfig{
			DefaultZoom: 1.0,
		},
	}
}

// Load reads the configuration from path. An empty path falls back to
// DefaultPath; a missing file yields the defaults without error. After
// file parsing, MGW_* environment variables override individual values.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := parse(path, data, &cfg); err != nil {
			return cfg, err
		}
	case os.IsNotExist(err) && !explicit:
		// No config file present, defaults apply
	default:
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

// parse unmarshals data according to the file extension. Unknown
// extensions are treated as TOML, the project default.
func parse(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse TOML config %s: %w", path, err)
		}
	}
	return nil
}

// applyEnv overrides values from MGW_* environment variables
func applyEnv(cfg *Config) {
	if v := os.Getenv("MGW_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("MGW_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("MGW_HISTORY_PATH"); v != "" {
		cfg.History.Path = v
	}
	if v := os.Getenv("MGW_HISTORY_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.History.Enabled = enabled
		}
	}
	if v := os.Getenv("MGW_PLOT_DEFAULT_ZOOM"); v != "" {
		if zoom, err := strconv.ParseFloat(v, 64); err == nil && zoom > 0 {
			cfg.Plot.DefaultZoom = zoom
		}
	}
}
