package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds the settings of the turing CLI. Command-line flags override it.
type Config struct {
	// StepLimit bounds every run; 0 keeps runs unbounded.
	StepLimit int    `yaml:"step_limit" toml:"step_limit"`
	Workers   int    `yaml:"workers" toml:"workers"`
	LogLevel  string `yaml:"log_level" toml:"log_level"`
	LogFile   string `yaml:"log_file" toml:"log_file"`
	// Color is one of auto, always, never.
	Color string      `yaml:"color" toml:"color"`
	Cache CacheConfig `yaml:"cache" toml:"cache"`
	Serve ServeConfig `yaml:"serve" toml:"serve"`
}

// CacheConfig selects and configures the result cache.
type CacheConfig struct {
	Backend       string `yaml:"backend" toml:"backend"`
	RedisAddr     string `yaml:"redis_addr" toml:"redis_addr"`
	RedisPassword string `yaml:"redis_password" toml:"redis_password"`
	RedisDB       int    `yaml:"redis_db" toml:"redis_db"`
	Prefix        string `yaml:"prefix" toml:"prefix"`
	// TTL is a Go duration string ("10m"); empty means no expiry.
	TTL string `yaml:"ttl" toml:"ttl"`
}

// ServeConfig configures the HTTP server.
type ServeConfig struct {
	Port string `yaml:"port" toml:"port"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Workers:  1,
		LogLevel: "info",
		Color:    "auto",
		Cache: CacheConfig{
			Backend:   CacheNone,
			RedisAddr: "localhost:6379",
			Prefix:    "turing:result:",
		},
		Serve: ServeConfig{Port: "8080"},
	}
}

// Load reads a YAML or TOML file (chosen by extension) on top of the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	return cfg, cfg.Validate()
}

// Validate reports settings that cannot be honored.
func (c Config) Validate() error {
	if c.StepLimit < 0 {
		return fmt.Errorf("step_limit must be >= 0, got %d", c.StepLimit)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	if _, err := c.Cache.TTLDuration(); err != nil {
		return err
	}
	return nil
}

// TTLDuration parses the cache TTL.
func (c CacheConfig) TTLDuration() (time.Duration, error) {
	if c.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0, fmt.Errorf("invalid cache ttl %q: %w", c.TTL, err)
	}
	return d, nil
}
