package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch strings.ToLower(c.DataSource.Mode) {
	case DataSourceLive:
		if err := c.validateLive(); err != nil {
			return err
		}
	case DataSourceFixture:
		if len(c.Supabase.JWTSecret) < 32 {
			return fmt.Errorf("supabase.jwt_secret must be at least 32 characters in fixture mode (got %d)", len(c.Supabase.JWTSecret))
		}
	default:
		return fmt.Errorf("data_source.mode must be %q or %q (got %q)", DataSourceLive, DataSourceFixture, c.DataSource.Mode)
	}

	if err := validateAbsURL(c.Site.URL); err != nil {
		return fmt.Errorf("site.url: %w", err)
	}
	if !strings.HasPrefix(c.Site.LoginPath, "/") {
		return fmt.Errorf("site.login_path must start with / (got %q)", c.Site.LoginPath)
	}

	if c.Search.ResultStoreSize <= 0 {
		return fmt.Errorf("search.result_store_size must be > 0 (got %d)", c.Search.ResultStoreSize)
	}
	if c.Search.ResultTTL <= 0 {
		return fmt.Errorf("search.result_ttl must be > 0 (got %v)", c.Search.ResultTTL)
	}
	if c.Search.HistoryRetentionDays <= 0 {
		return fmt.Errorf("search.history_retention_days must be > 0 (got %d)", c.Search.HistoryRetentionDays)
	}
	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}

func (c *Config) validateLive() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required in live mode")
	}
	if err := validateAbsURL(c.Supabase.URL); err != nil {
		return fmt.Errorf("supabase.url: %w", err)
	}
	if c.Supabase.AnonKey == "" {
		return fmt.Errorf("supabase.anon_key is required in live mode")
	}
	if c.Supabase.JWTSecret != "" && len(c.Supabase.JWTSecret) < 32 {
		return fmt.Errorf("supabase.jwt_secret must be at least 32 characters (got %d)", len(c.Supabase.JWTSecret))
	}
	return nil
}

func validateAbsURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}
