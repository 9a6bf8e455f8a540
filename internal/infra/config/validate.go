package config

import (
	"fmt"
	"net/url"
)

// Validate checks cfg for values that would break the pipeline at runtime.
func Validate(cfg *Config) error {
	if cfg.Search.BaseURL == "" {
		return fmt.Errorf("search.base_url is required")
	}
	u, err := url.Parse(cfg.Search.BaseURL)
	if err != nil {
		return fmt.Errorf("search.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("search.base_url: scheme must be http or https")
	}
	if cfg.Search.Num < 1 || cfg.Search.Num > 20 {
		return fmt.Errorf("search.num must be 1-20, got %d", cfg.Search.Num)
	}
	if cfg.Search.Timeout <= 0 {
		return fmt.Errorf("search.timeout must be positive")
	}
	switch cfg.Logger.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logger.format must be text or json, got %q", cfg.Logger.Format)
	}
	switch cfg.Tracer.Exporter {
	case "", "noop", "stdout":
	default:
		return fmt.Errorf("tracer.exporter must be noop or stdout, got %q", cfg.Tracer.Exporter)
	}
	return nil
}
