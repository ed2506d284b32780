package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "sweetshop"

// Environment variables that override file settings.
const (
	EnvAPIURL   = "SWEETSHOP_API_URL"
	EnvToken    = "SWEETSHOP_TOKEN"
	EnvRole     = "SWEETSHOP_ROLE"
	EnvUsername = "SWEETSHOP_USERNAME"
	EnvLogLevel = "SWEETSHOP_LOG_LEVEL"
)

type Config struct {
	API    APIConfig    `koanf:"api"`
	Viewer ViewerConfig `koanf:"viewer"`
	UI     UIConfig     `koanf:"ui"`
	Log    LogConfig    `koanf:"log"`
	Proxy  ProxyConfig  `koanf:"proxy"`
}

// APIConfig holds the remote API connection settings.
type APIConfig struct {
	URL            string `koanf:"url"`             // e.g., "https://web-production-80c12.up.railway.app"
	Token          string `koanf:"token"`           // bearer token, also read for viewer claims
	TimeoutSeconds int    `koanf:"timeout_seconds"` // per-request timeout (default: 15)
}

// ViewerConfig overrides the identity read from the token.
type ViewerConfig struct {
	Username string `koanf:"username"`
	Role     string `koanf:"role"` // "admin" or "user"
}

// UIConfig holds dashboard display settings.
type UIConfig struct {
	ToastSeconds int `koanf:"toast_seconds"` // notification lifetime (default: 3)
	CardWidth    int `koanf:"card_width"`    // grid card width in columns (default: 30)
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/sweetshop/sweetshop.log
}

// ProxyConfig holds the development proxy settings.
type ProxyConfig struct {
	Addr   string `koanf:"addr"`   // listen address (default: ":3000")
	Target string `koanf:"target"` // remote origin (default: api.url)
}

// Load reads the default config files, then applies .env and environment overrides.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order (last wins). Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	applyEnv(cfg)

	// Normalize URLs (remove trailing slash)
	cfg.API.URL = strings.TrimSuffix(cfg.API.URL, "/")
	cfg.Proxy.Target = strings.TrimSuffix(cfg.Proxy.Target, "/")

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

// loadDotEnv loads ./.env into the process environment without overriding
// variables that are already set.
func loadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.API.URL = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		cfg.API.Token = v
	}
	if v := os.Getenv(EnvRole); v != "" {
		cfg.Viewer.Role = v
	}
	if v := os.Getenv(EnvUsername); v != "" {
		cfg.Viewer.Username = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/sweetshop/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasToken returns true if an API token is configured.
func (c *Config) HasToken() bool {
	return c.API.Token != ""
}

// RequestTimeout returns the per-request timeout with the default applied.
func (c *Config) RequestTimeout() time.Duration {
	if c.API.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// ToastDuration returns how long notifications stay visible.
func (c *Config) ToastDuration() time.Duration {
	if c.UI.ToastSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.UI.ToastSeconds) * time.Second
}

// GetCardWidth returns the grid card width, clamped to a usable range.
func (c *Config) GetCardWidth() int {
	w := c.UI.CardWidth
	if w <= 0 {
		return 30
	}
	return min(max(w, 24), 60)
}

// GetLogFile returns the log file path with the default applied.
func (c *Config) GetLogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// GetProxyConfig returns the proxy configuration with defaults applied.
func (c *Config) GetProxyConfig() ProxyConfig {
	cfg := c.Proxy
	if cfg.Addr == "" {
		cfg.Addr = ":3000"
	}
	if cfg.Target == "" {
		cfg.Target = c.API.URL
	}
	return cfg
}
