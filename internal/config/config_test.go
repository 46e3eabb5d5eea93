package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"WELLCHECK_ADDR", "WELLCHECK_CATALOG_DIR", "WELLCHECK_LOG_LEVEL", "WELLCHECK_LOG_FORMAT", "WELLCHECK_LOG_FILE"} {
		t.Setenv(k, "")
	}

	cfg := ConfigFromEnv()
	if cfg != DefaultConfig() {
		t.Errorf("ConfigFromEnv() = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("WELLCHECK_ADDR", "127.0.0.1:9000")
	t.Setenv("WELLCHECK_CATALOG_DIR", "/srv/catalogs")
	t.Setenv("WELLCHECK_LOG_LEVEL", "DEBUG")
	t.Setenv("WELLCHECK_LOG_FORMAT", "json")
	t.Setenv("WELLCHECK_LOG_FILE", "/tmp/wellcheck.log")

	cfg := ConfigFromEnv()
	if cfg.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.CatalogDir != "/srv/catalogs" {
		t.Errorf("CatalogDir = %q", cfg.CatalogDir)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want lowercased", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" || cfg.Log.File != "/tmp/wellcheck.log" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestConfigFromEnv_WarningLevel(t *testing.T) {
	t.Setenv("WELLCHECK_LOG_LEVEL", "Warning")

	cfg := ConfigFromEnv()
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("WELLCHECK_ADDR", "")
	t.Setenv("WELLCHECK_LOG_LEVEL", "")
	// godotenv skips variables that are present, even when empty.
	os.Unsetenv("WELLCHECK_ADDR")
	os.Unsetenv("WELLCHECK_LOG_LEVEL")

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("WELLCHECK_ADDR=:7070\nWELLCHECK_LOG_LEVEL=warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Errorf("Addr = %q, want :7070", cfg.Addr)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	t.Setenv("WELLCHECK_LOG_LEVEL", "")
	t.Setenv("WELLCHECK_LOG_FORMAT", "")
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"warning alias", func(c *Config) { c.Log.Level = "warning" }, false},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"empty addr", func(c *Config) { c.Addr = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
