// Package config loads the application configuration from a YAML file,
// filling gaps with defaults and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// TraqConfig holds the traQ chat connection settings. The bot token is
// taken from the TRAQ_TOKEN environment variable when not set here.
type TraqConfig struct {
	BaseURL string `yaml:"base_url"`
	Token   string `yaml:"token"`

	// ChannelFreshFor and ChannelStaleFor bound the channel list cache.
	ChannelFreshFor time.Duration `yaml:"channel_fresh_for"`
	ChannelStaleFor time.Duration `yaml:"channel_stale_for"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address for the API server.
	Listen string `yaml:"listen"`

	// DBPath is the SQLite database file. Overridden by STAGEHAND_DB.
	DBPath string `yaml:"db_path"`

	// RemindCron schedules the daily reminder sweep.
	RemindCron string `yaml:"remind_cron"`

	Traq TraqConfig `yaml:"traq"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Listen:     ":8080",
		DBPath:     "stagehand.db",
		RemindCron: "0 8 * * *",
		Traq: TraqConfig{
			ChannelFreshFor: 5 * time.Minute,
			ChannelStaleFor: 10 * time.Minute,
		},
	}
}

// Normalize fills zero values with defaults and applies environment
// overrides, so partially-written config files still behave.
func (c *Config) Normalize() {
	def := Default()
	if c.Listen == "" {
		c.Listen = def.Listen
	}
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.RemindCron == "" {
		c.RemindCron = def.RemindCron
	}
	if c.Traq.ChannelFreshFor <= 0 {
		c.Traq.ChannelFreshFor = def.Traq.ChannelFreshFor
	}
	if c.Traq.ChannelStaleFor < c.Traq.ChannelFreshFor {
		c.Traq.ChannelStaleFor = 2 * c.Traq.ChannelFreshFor
	}
	if v := os.Getenv("STAGEHAND_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("TRAQ_TOKEN"); v != "" && c.Traq.Token == "" {
		c.Traq.Token = v
	}
}

// Load reads the YAML file at path. A missing file is not an error; the
// defaults are returned instead. An empty path consults STAGEHAND_CONFIG
// before falling back to "stagehand.yaml".
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("STAGEHAND_CONFIG")
	}
	if path == "" {
		path = "stagehand.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			cfg.Normalize()
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Normalize()
	return &cfg, nil
}
