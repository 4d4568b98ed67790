// ABOUTME: Process configuration layered from defaults, YAML file, and env.
// ABOUTME: Also builds the logger and opens storage from the loaded config.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"

	"github.com/harperreed/tennis/internal/sportradar"
	"github.com/harperreed/tennis/internal/storage"
)

// Config contains process configuration.
type Config struct {
	// DBPath overrides the database location. Empty means the default
	// under the XDG data directory.
	DBPath string `koanf:"db_path"`

	// APIKey authenticates against the SportRadar API. Required for sync.
	APIKey string `koanf:"api_key"`

	// APIBaseURL overrides the SportRadar API root.
	APIBaseURL string `koanf:"api_base_url"`

	// CacheDir holds the API response cache. Empty means a cache/
	// directory next to the database.
	CacheDir string `koanf:"cache_dir"`

	// CacheTTLMinutes bounds how long cached API responses are served.
	CacheTTLMinutes int `koanf:"cache_ttl_minutes"`

	// Addr configures the HTTP listen address for serve.
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		APIBaseURL:      sportradar.DefaultBaseURL,
		CacheTTLMinutes: 60,
		Addr:            ":8080",
		LogLevel:        "info",
	}
}

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML): TENNIS_CONFIG if set, else ~/.config/tennis/config.yaml
//  3. env (prefix TENNIS_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	path := os.Getenv("TENNIS_CONFIG")
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(home, ".config", "tennis", "config.yaml")
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// Environment variables: TENNIS_API_KEY, TENNIS_DB_PATH, ...
	// Map env keys like TENNIS_API_KEY -> api_key to match the koanf tags.
	envProvider := env.Provider("TENNIS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "tennis_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load env config: %w", err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// OpenStorage opens the database named by the config, or the default one.
func (c *Config) OpenStorage() (storage.Repository, error) {
	if c.DBPath != "" {
		return storage.Open(c.DBPath)
	}
	return storage.OpenDefault()
}

// ResolveCacheDir returns the API cache directory, creating it if needed.
func (c *Config) ResolveCacheDir() (string, error) {
	dir := c.CacheDir
	if dir == "" {
		dir = filepath.Join(storage.DataDir(), "cache")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create cache dir: %w", err)
	}
	return dir, nil
}

// NewLogger builds a logger at the configured level. Unknown levels fall
// back to info.
func (c *Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
