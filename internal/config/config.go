package config

import (
	"strings"
	"time"
)

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// APIConfig selects the news API host.
type APIConfig struct {
	BaseURL          string `mapstructure:"base_url"`
	Timeout          string `mapstructure:"timeout"` // duration string, e.g., "10s"
	VehicleSpecsPath string `mapstructure:"vehicle_specs_path"`
}

// PagingConfig controls list page sizes.
type PagingConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// SearchConfig controls client-side vehicle search.
type SearchConfig struct {
	Debounce string `mapstructure:"debounce"` // duration string, e.g., "300ms"
}

// RedisConfig holds redis connection settings. An empty Addr keeps session
// overlays in memory.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SessionConfig scopes view counts and bookmarks.
type SessionConfig struct {
	ID  string `mapstructure:"id"`
	TTL string `mapstructure:"ttl"`
}

// WatchConfig controls the polling watchers.
type WatchConfig struct {
	Interval   string   `mapstructure:"interval"`
	Categories []string `mapstructure:"categories"`
}

// Config is the top-level configuration structure.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	API     APIConfig     `mapstructure:"api"`
	Paging  PagingConfig  `mapstructure:"paging"`
	Search  SearchConfig  `mapstructure:"search"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Session SessionConfig `mapstructure:"session"`
	Watch   WatchConfig   `mapstructure:"watch"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if strings.TrimSpace(c.API.BaseURL) == "" {
		c.API.BaseURL = "http://localhost:8000"
	}
	if c.API.Timeout == "" {
		c.API.Timeout = "10s"
	}
	if c.API.VehicleSpecsPath == "" {
		c.API.VehicleSpecsPath = "/vehicle-specs/"
	}
	if c.Paging.PageSize <= 0 {
		c.Paging.PageSize = 10
	}
	if c.Search.Debounce == "" {
		c.Search.Debounce = "300ms"
	}
	if c.Session.ID == "" {
		c.Session.ID = "default"
	}
	if c.Session.TTL == "" {
		c.Session.TTL = "24h"
	}
	if c.Watch.Interval == "" {
		c.Watch.Interval = "5m"
	}
}

// Durations parses the duration strings of the config.
type Durations struct {
	APITimeout time.Duration
	Debounce   time.Duration
	SessionTTL time.Duration
	Watch      time.Duration
}

// ParseDurations validates every duration field at once.
func (c Config) ParseDurations() (Durations, error) {
	var d Durations
	var err error
	if d.APITimeout, err = parse("api.timeout", c.API.Timeout); err != nil {
		return d, err
	}
	if d.Debounce, err = parse("search.debounce", c.Search.Debounce); err != nil {
		return d, err
	}
	if d.SessionTTL, err = parse("session.ttl", c.Session.TTL); err != nil {
		return d, err
	}
	if d.Watch, err = parse("watch.interval", c.Watch.Interval); err != nil {
		return d, err
	}
	return d, nil
}
