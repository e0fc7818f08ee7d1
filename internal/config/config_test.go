package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PRESSNAV_CONFIG", filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Site.BaseURL == "" {
		t.Fatal("base URL default missing")
	}
	if cfg.Database.Path == "" {
		t.Fatal("database path default missing")
	}
	if cfg.UI.Language != "en" {
		t.Fatalf("language = %q, want en", cfg.UI.Language)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("PRESSNAV_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
	t.Setenv("PRESSNAV_SITE_BASE_URL", "https://cms.example/wp-admin")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Site.BaseURL != "https://cms.example/wp-admin" {
		t.Fatalf("base URL = %q, env override ignored", cfg.Site.BaseURL)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("PRESSNAV_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.UI.DebugLog = true
	cfg.Site.BaseURL = "https://roundtrip.example/wp-admin"

	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file missing: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !got.UI.DebugLog || got.Site.BaseURL != "https://roundtrip.example/wp-admin" {
		t.Fatalf("round trip lost values: %+v", got)
	}
}
