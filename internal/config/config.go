// Package config loads the Folio configuration: a JSON file merged over
// defaults, with secrets (admin credentials, Telegram token) taken from
// the environment so they stay out of the file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the full Folio configuration.
type Config struct {
	Server    ServerConfig    `json:"server"`
	Store     StoreConfig     `json:"store"`
	RateLimit RateLimitConfig `json:"rateLimit"`

	// Env-sourced, never read from the file.
	Admin    AdminConfig    `json:"-"`
	Telegram TelegramConfig `json:"-"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Addr         string `json:"addr"`
	ContentPath  string `json:"contentPath"`
	WatchContent bool   `json:"watchContent"`
}

// StoreConfig contains document store settings.
type StoreConfig struct {
	Path string `json:"path"`
}

// RateLimitConfig bounds contact-form submissions.
type RateLimitConfig struct {
	Max           int `json:"max"`
	WindowSeconds int `json:"windowSeconds"`
}

// AdminConfig holds the console/admin credentials.
type AdminConfig struct {
	Username string
	Password string
}

// TelegramConfig holds the notification relay settings.
type TelegramConfig struct {
	Token  string
	ChatID string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Store: StoreConfig{
			Path: filepath.Join(homeDir, ".folio", "folio.db"),
		},
		RateLimit: RateLimitConfig{
			Max:           3,
			WindowSeconds: 600,
		},
	}
}

// Load reads .folio.json from dir (falling back to defaults when absent)
// and overlays env-sourced secrets.
func Load(dir string) (*Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(dir, ".folio.json")
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg Config
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		cfg = MergeWithDefaults(&fileCfg)
	}

	cfg.Admin = AdminConfig{
		Username: os.Getenv("ADMIN_USERNAME"),
		Password: os.Getenv("ADMIN_PASSWORD"),
	}
	cfg.Telegram = TelegramConfig{
		Token:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		ChatID: os.Getenv("TELEGRAM_CHAT_ID"),
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Addr = ":" + v
	}
	if v := os.Getenv("FOLIO_DB"); v != "" {
		cfg.Store.Path = v
	}

	return cfg, nil
}

// MergeWithDefaults fills in missing values with defaults.
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaults.Server.Addr
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = defaults.Store.Path
	}
	if cfg.RateLimit.Max == 0 {
		cfg.RateLimit.Max = defaults.RateLimit.Max
	}
	if cfg.RateLimit.WindowSeconds == 0 {
		cfg.RateLimit.WindowSeconds = defaults.RateLimit.WindowSeconds
	}

	return cfg
}
