// Package config handles configuration loading for finscope.
// It supports YAML config files with environment variable overrides and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "FINSCOPE"

// Config represents the complete application configuration.
type Config struct {
	Engine     EngineConfig     `mapstructure:"engine"     yaml:"engine"`
	Benchmarks BenchmarksConfig `mapstructure:"benchmarks" yaml:"benchmarks"`
	Store      StoreConfig      `mapstructure:"store"      yaml:"store"`
	API        APIConfig        `mapstructure:"api"        yaml:"api"`
	Logging    LoggingConfig    `mapstructure:"logging"    yaml:"logging"`
}

// EngineConfig holds analysis engine settings.
type EngineConfig struct {
	Workers          int         `mapstructure:"workers"           yaml:"workers"`
	TopK             int         `mapstructure:"top_k"             yaml:"top_k"`
	Tiers            TiersConfig `mapstructure:"tiers"             yaml:"tiers"`
	EqualTolerance   float64     `mapstructure:"equal_tolerance"   yaml:"equal_tolerance"` // percent
	ComparisonLevels []string    `mapstructure:"comparison_levels" yaml:"comparison_levels"`
	Language         string      `mapstructure:"language"          yaml:"language"` // "en" or "ar"
}

// TiersConfig holds the lower bound, in percent of favorable deviation,
// of each evaluation tier above weak.
type TiersConfig struct {
	Excellent  float64 `mapstructure:"excellent"  yaml:"excellent"`
	VeryGood   float64 `mapstructure:"very_good"  yaml:"very_good"`
	Good       float64 `mapstructure:"good"       yaml:"good"`
	Acceptable float64 `mapstructure:"acceptable" yaml:"acceptable"`
}

// BenchmarksConfig holds benchmark table settings.
type BenchmarksConfig struct {
	Dir      string `mapstructure:"dir"       yaml:"dir"`       // directory of YAML tables; empty uses the default table only
	CacheTTL int    `mapstructure:"cache_ttl" yaml:"cache_ttl"` // seconds
}

// StoreConfig holds report persistence settings.
type StoreConfig struct {
	Driver      string `mapstructure:"driver"       yaml:"driver"` // "memory" or "postgres"
	DatabaseURL string `mapstructure:"database_url" yaml:"database_url"`
	MaxConns    int    `mapstructure:"max_conns"    yaml:"max_conns"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host           string   `mapstructure:"host"            yaml:"host"`
	Port           int      `mapstructure:"port"            yaml:"port"`
	CORSOrigins    []string `mapstructure:"cors_origins"    yaml:"cors_origins"`
	RateLimit      int      `mapstructure:"rate_limit"      yaml:"rate_limit"`      // analyze requests per minute
	RequestTimeout int      `mapstructure:"request_timeout" yaml:"request_timeout"` // seconds
	MaxBodyBytes   int64    `mapstructure:"max_body_bytes"  yaml:"max_body_bytes"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `mapstructure:"level"   yaml:"level"`  // "debug", "info", "warn", "error"
	Format  string `mapstructure:"format"  yaml:"format"` // "text" or "json"
	Tracing bool   `mapstructure:"tracing" yaml:"tracing"`
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.finscope/config.yaml (home directory)
//  3. /etc/finscope/config.yaml (system)
//
// A .env file in the working directory is loaded first if present.
// Environment variables override config file values.
// Format: FINSCOPE_<SECTION>_<KEY>, e.g., FINSCOPE_STORE_DATABASE_URL
func Load() (*Config, error) {
	loadDotEnv(".env")

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".finscope"))
	v.AddConfigPath("/etc/finscope")

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return unmarshal(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadDotEnv(filepath.Join(filepath.Dir(path), ".env"))

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	overrideFromEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// Engine defaults
	v.SetDefault("engine.workers", 8)
	v.SetDefault("engine.top_k", 3)
	v.SetDefault("engine.tiers.excellent", 25.0)
	v.SetDefault("engine.tiers.very_good", 10.0)
	v.SetDefault("engine.tiers.good", -10.0)
	v.SetDefault("engine.tiers.acceptable", -25.0)
	v.SetDefault("engine.equal_tolerance", 1.0)
	v.SetDefault("engine.comparison_levels", []string{"local", "regional", "global"})
	v.SetDefault("engine.language", "en")

	// Benchmark defaults
	v.SetDefault("benchmarks.dir", "")
	v.SetDefault("benchmarks.cache_ttl", 600) // 10 minutes

	// Store defaults
	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.database_url", "")
	v.SetDefault("store.max_conns", 4)

	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("api.rate_limit", 60)
	v.SetDefault("api.request_timeout", 30)
	v.SetDefault("api.max_body_bytes", 4<<20)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.tracing", false)
}

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	t := c.Engine.Tiers
	if !(t.Excellent > t.VeryGood && t.VeryGood > t.Good && t.Good > t.Acceptable) {
		return fmt.Errorf("engine.tiers must strictly decrease from excellent to acceptable")
	}
	if c.Engine.EqualTolerance < 0 {
		return fmt.Errorf("engine.equal_tolerance must be non-negative")
	}
	if len(c.Engine.ComparisonLevels) == 0 {
		return fmt.Errorf("engine.comparison_levels must not be empty")
	}
	switch c.Engine.Language {
	case "en", "ar":
	default:
		return fmt.Errorf("engine.language: unsupported %q", c.Engine.Language)
	}
	switch c.Store.Driver {
	case "memory":
	case "postgres":
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("store.database_url is required for the postgres driver")
		}
	default:
		return fmt.Errorf("store.driver: unsupported %q", c.Store.Driver)
	}
	return nil
}

// overrideFromEnv explicitly reads sensitive keys from environment variables.
func overrideFromEnv(cfg *Config) {
	if url := os.Getenv(envDatabaseURL); url != "" {
		cfg.Store.DatabaseURL = url
	} else if url := os.Getenv("DATABASE_URL"); url != "" && cfg.Store.DatabaseURL == "" {
		cfg.Store.DatabaseURL = url
	}
}

// loadDotEnv loads path into the environment without overriding variables
// that are already set. A missing file is ignored.
func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
