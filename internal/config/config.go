package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Site     SiteConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// SiteConfig points at the CMS install this console administers.
type SiteConfig struct {
	// BaseURL is the admin root full navigations resolve against,
	// e.g. https://example.com/wp-admin.
	BaseURL string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Language string
	DebugLog bool
	LogPath  string
}

// Load reads configuration from file and env. Env var overrides use prefix PRESSNAV_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "pressnav", "site.db"))
	v.SetDefault("site.base_url", "http://localhost:8080/wp-admin")
	v.SetDefault("ui.language", "en")
	v.SetDefault("ui.debug_log", false)
	v.SetDefault("ui.log_path", filepath.Join(home, ".local", "state", "pressnav", "pressnav.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PRESSNAV_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "pressnav"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PRESSNAV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the settings surface for non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("PRESSNAV_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "pressnav", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("site.base_url", cfg.Site.BaseURL)
	v.Set("ui.language", cfg.UI.Language)
	v.Set("ui.debug_log", cfg.UI.DebugLog)
	v.Set("ui.log_path", cfg.UI.LogPath)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
