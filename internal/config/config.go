package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port    int  `yaml:"port"`
		DevMode bool `yaml:"dev_mode"`
	} `yaml:"server"`
	Market struct {
		IndexSymbol  string `yaml:"index_symbol"`
		Suffix       string `yaml:"suffix"`
		LookbackDays int    `yaml:"lookback_days"`
	} `yaml:"market"`
	Scan struct {
		Concurrency int    `yaml:"concurrency"`
		CacheFile   string `yaml:"cache_file"`
		CacheTTL    string `yaml:"cache_ttl"`
		PrewarmCron string `yaml:"prewarm_cron"`
	} `yaml:"scan"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Registry struct {
		File string `yaml:"file"`
	} `yaml:"registry"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DEV_MODE"); v != "" {
		cfg.Server.DevMode = v == "true" || v == "1"
	}
	if v := os.Getenv("INDEX_SYMBOL"); v != "" {
		cfg.Market.IndexSymbol = v
	}
	if v := os.Getenv("CACHE_FILE"); v != "" {
		cfg.Scan.CacheFile = v
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		cfg.Scan.CacheTTL = v
	}
	if v := os.Getenv("SCAN_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scan.Concurrency = n
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("REGISTRY_FILE"); v != "" {
		cfg.Registry.File = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Market.IndexSymbol == "" {
		cfg.Market.IndexSymbol = "^TASI.SR"
	}
	if cfg.Market.Suffix == "" {
		cfg.Market.Suffix = ".SR"
	}
	if cfg.Market.LookbackDays == 0 {
		cfg.Market.LookbackDays = 365
	}
	if cfg.Scan.Concurrency == 0 {
		cfg.Scan.Concurrency = 8
	}
	if cfg.Scan.CacheFile == "" {
		cfg.Scan.CacheFile = "data/market_scan_cache.json"
	}
	if cfg.Scan.CacheTTL == "" {
		cfg.Scan.CacheTTL = "6h"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/tadawulscout.db"
	}

	return cfg, nil
}

// Validate checks that all fields are usable.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Market.IndexSymbol == "" {
		return fmt.Errorf("market.index_symbol is required")
	}
	if c.Market.LookbackDays < 200 {
		return fmt.Errorf("market.lookback_days must be at least 200")
	}
	if c.Scan.Concurrency <= 0 {
		return fmt.Errorf("scan.concurrency must be positive")
	}
	if _, err := time.ParseDuration(c.Scan.CacheTTL); err != nil {
		return fmt.Errorf("scan.cache_ttl: %w", err)
	}
	return nil
}

// CacheTTL returns the parsed cache time-to-live. Call Validate first;
// an unparseable value falls back to six hours.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Scan.CacheTTL)
	if err != nil {
		return 6 * time.Hour
	}
	return d
}
