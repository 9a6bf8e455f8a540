package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Search SearchConfig `yaml:"search"`
	Logger LoggerConfig `yaml:"logger"`
	Tracer TracerConfig `yaml:"tracer"`
}

// SearchConfig holds search provider settings.
type SearchConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"` // per HTTP call, no retry
	Num     int           `yaml:"num"`     // results per single search

	// Outbound rate limiting (provider quota protection).
	RateLimit float64 `yaml:"rate_limit"` // requests per second, 0 = default
	RateBurst int     `yaml:"rate_burst"`

	CircuitBreaker CircuitBreakerConfig `yaml:"circuit_breaker"`
}

// CircuitBreakerConfig holds circuit breaker settings for the search client.
type CircuitBreakerConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxFailures uint32        `yaml:"max_failures"`
	Timeout     time.Duration `yaml:"timeout"`
	Interval    time.Duration `yaml:"interval"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
	Output string `yaml:"output"` // stdout, stderr, or a file path
}

// TracerConfig holds OpenTelemetry tracing settings.
type TracerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Exporter string `yaml:"exporter"` // "stdout" or "noop"
}

// Defaults returns a Config with sensible defaults applied.
func Defaults() *Config {
	return &Config{
		Search: SearchConfig{
			BaseURL:   "https://www.searchapi.io/api/v1/search",
			Timeout:   10 * time.Second,
			Num:       10,
			RateLimit: 5,
			RateBurst: 10,
			CircuitBreaker: CircuitBreakerConfig{
				Enabled:     true,
				MaxFailures: 5,
				Timeout:     30 * time.Second,
				Interval:    60 * time.Second,
			},
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Tracer: TracerConfig{
			Enabled:  false,
			Exporter: "noop",
		},
	}
}

// Load reads the config file at path, merging it over Defaults. A missing
// file is not an error: defaults plus environment overrides are returned.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			ApplyEnvOverrides(cfg)
			if err := Validate(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	ApplyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides applies environment variable overrides to cfg.
// Environment values take precedence over file values.
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ARIAAI_SEARCHAPI_KEY"); v != "" {
		cfg.Search.APIKey = v
	}
	if v := os.Getenv("ARIAAI_SEARCHAPI_URL"); v != "" {
		cfg.Search.BaseURL = v
	}
	if v := os.Getenv("ARIAAI_LOG_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
}
