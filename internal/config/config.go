// Package config loads wellcheck settings from an optional .env file and
// WELLCHECK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime settings shared by the CLI, the TUI and the server.
type Config struct {
	// Addr is the listen address of the HTTP API. Default: ":8080".
	Addr string

	// CatalogDir, if set, is scanned for additional catalog documents.
	CatalogDir string

	Log LogConfig
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // debug, info, warn, error. Default: "info"
	Format string // text or json. Default: "text"

	// File redirects logs to a file. The TUI discards logs unless set.
	File string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr: ":8080",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if a := os.Getenv("WELLCHECK_ADDR"); a != "" {
		cfg.Addr = a
	}
	if d := os.Getenv("WELLCHECK_CATALOG_DIR"); d != "" {
		cfg.CatalogDir = d
	}
	if l := os.Getenv("WELLCHECK_LOG_LEVEL"); l != "" {
		cfg.Log.Level = normalizeLevel(l)
	}
	if f := os.Getenv("WELLCHECK_LOG_FORMAT"); f != "" {
		cfg.Log.Format = strings.ToLower(f)
	}
	if f := os.Getenv("WELLCHECK_LOG_FILE"); f != "" {
		cfg.Log.File = f
	}

	return cfg
}

// Load reads envFiles (".env" when none are given) into the process
// environment, then returns ConfigFromEnv. Missing files are ignored;
// variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, name := range envFiles {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", name, err)
		}
	}

	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// normalizeLevel lowercases a level name and folds "warning" into "warn".
func normalizeLevel(level string) string {
	level = strings.ToLower(level)
	if level == "warning" {
		return "warn"
	}
	return level
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("WELLCHECK_ADDR must not be empty")
	}
	if !slices.Contains([]string{"debug", "info", "warn", "warning", "error"}, c.Log.Level) {
		return fmt.Errorf("unknown log level: %q", c.Log.Level)
	}
	if !slices.Contains([]string{"text", "json"}, c.Log.Format) {
		return fmt.Errorf("unknown log format: %q", c.Log.Format)
	}
	return nil
}
