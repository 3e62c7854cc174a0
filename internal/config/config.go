// Package config loads the client configuration from TOML files and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/dustin/go-humanize"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Defaults.
const (
	DefaultServer        = "http://localhost:5000"
	DefaultStartPath     = "/"
	DefaultSmallWidth    = 640
	DefaultThinHeight    = 320
	DefaultCellWidth     = 8
	DefaultCellHeight    = 16
	DefaultWeatherURL    = "https://wttr.in/"
	DefaultWeatherFormat = "%c"
	DefaultCacheSize     = "512MB"
)

type Config struct {
	Server    string `koanf:"server"     env:"MOO_SERVER"`
	StartPath string `koanf:"start_path" env:"MOO_START_PATH"`
	// Resume on the last visited page instead of StartPath (default: true)
	Resume        *bool `koanf:"resume"`
	Notifications *bool `koanf:"notifications"` // desktop notification on track change (default: true)
	MPRIS         *bool `koanf:"mpris"`         // media keys over D-Bus (default: true)

	Icons string `koanf:"icons"` // "nerd", "unicode" or "none" (default)
	Debug bool   `koanf:"debug" env:"MOO_DEBUG"`

	HistorySize int `koanf:"history_size"` // visited pages kept (default: 1000)

	Layout  LayoutConfig  `koanf:"layout"`
	Weather WeatherConfig `koanf:"weather"`
	Glow    GlowConfig    `koanf:"glow"`
	Cache   CacheConfig   `koanf:"cache"`
}

// LayoutConfig holds the viewport breakpoints, in pixels, and the pixel
// size of one terminal cell.
type LayoutConfig struct {
	SmallWidth int `koanf:"small_width"`
	ThinHeight int `koanf:"thin_height"`
	CellWidth  int `koanf:"cell_width"`
	CellHeight int `koanf:"cell_height"`
}

// WeatherConfig holds the weather widget settings.
type WeatherConfig struct {
	Enabled *bool  `koanf:"enabled"`
	URL     string `koanf:"url"     env:"MOO_WEATHER_URL"`
	Format  string `koanf:"format"  env:"MOO_WEATHER_FORMAT"`
}

// GlowConfig holds the title glow settings.
type GlowConfig struct {
	Enabled *bool `koanf:"enabled"`
}

// CacheConfig holds the track cache settings.
type CacheConfig struct {
	Dir     string `koanf:"dir"      env:"MOO_CACHE_DIR"`
	MaxSize string `koanf:"max_size"` // e.g. "512MB", "2GiB"; "0" disables pruning
}

// Load reads the config files, last wins, then applies environment
// overrides.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files in order. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	cfg.Server = strings.TrimSpace(cfg.Server)
	if cfg.Cache.Dir != "" {
		cfg.Cache.Dir = expandPath(cfg.Cache.Dir)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/moo/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "moo", "config.toml"))
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

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// GetServer returns the server base URL.
func (c *Config) GetServer() string {
	if c.Server == "" {
		return DefaultServer
	}
	return c.Server
}

// GetStartPath returns the page opened when there is nothing to resume.
func (c *Config) GetStartPath() string {
	p := c.StartPath
	if p == "" {
		return DefaultStartPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// ResumeEnabled reports whether the last visited page is reopened on start.
func (c *Config) ResumeEnabled() bool {
	return boolOr(c.Resume, true)
}

// NotificationsEnabled reports whether track changes raise a notification.
func (c *Config) NotificationsEnabled() bool {
	return boolOr(c.Notifications, true)
}

// MPRISEnabled reports whether the MPRIS server is started.
func (c *Config) MPRISEnabled() bool {
	return boolOr(c.MPRIS, true)
}

// GlowEnabled reports whether play/pause flickers the title.
func (c *Config) GlowEnabled() bool {
	return boolOr(c.Glow.Enabled, true)
}

// GetLayout returns the layout configuration with defaults applied.
func (c *Config) GetLayout() LayoutConfig {
	cfg := c.Layout
	if cfg.SmallWidth <= 0 {
		cfg.SmallWidth = DefaultSmallWidth
	}
	if cfg.ThinHeight <= 0 {
		cfg.ThinHeight = DefaultThinHeight
	}
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = DefaultCellWidth
	}
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = DefaultCellHeight
	}
	return cfg
}

// GetWeather returns the weather configuration with defaults applied.
func (c *Config) GetWeather() WeatherConfig {
	cfg := c.Weather
	if cfg.Enabled == nil {
		enabled := true
		cfg.Enabled = &enabled
	}
	if cfg.URL == "" {
		cfg.URL = DefaultWeatherURL
	}
	if cfg.Format == "" {
		cfg.Format = DefaultWeatherFormat
	}
	return cfg
}

// WeatherEnabled reports whether the weather widget is fetched.
func (c *Config) WeatherEnabled() bool {
	return boolOr(c.Weather.Enabled, true)
}

// GetCacheDir returns the track cache directory.
func (c *Config) GetCacheDir() string {
	if c.Cache.Dir != "" {
		return c.Cache.Dir
	}
	return filepath.Join(xdg.CacheHome, "moo")
}

// GetCacheMaxBytes returns the cache size limit; 0 disables pruning.
func (c *Config) GetCacheMaxBytes() (int64, error) {
	size := c.Cache.MaxSize
	if size == "" {
		size = DefaultCacheSize
	}
	n, err := humanize.ParseBytes(size)
	if err != nil {
		return 0, fmt.Errorf("cache.max_size %q: %w", size, err)
	}
	return int64(n), nil //nolint:gosec // sizes beyond int64 are not meaningful
}
