package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// Validate also fills derived defaults (the SQLite path).
func (c *Config) Validate() error {
	if err := c.Lexicon.validate(); err != nil {
		return fmt.Errorf("lexicon: %w", err)
	}
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.RateLimit.SearchPerMinute < 0 {
		return fmt.Errorf("rate_limit.search_per_minute must be >= 0 (got %d)", c.RateLimit.SearchPerMinute)
	}
	return nil
}

func (l *LexiconConfig) validate() error {
	u, err := url.Parse(l.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", l.BaseURL)
	}
	l.BaseURL = strings.TrimRight(l.BaseURL, "/")
	if l.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %v)", l.Timeout)
	}
	if l.RatePerSecond < 0 {
		return fmt.Errorf("rate_per_second must be >= 0 (got %v)", l.RatePerSecond)
	}
	return nil
}

func (s *StorageConfig) validate() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	switch s.Driver {
	case DriverSQLite:
		if s.SQLitePath == "" {
			s.SQLitePath = DefaultSQLitePath()
		}
	case DriverPostgres:
		if s.PostgresDSN == "" {
			return fmt.Errorf("postgres_dsn is required for driver %q", DriverPostgres)
		}
		if s.MaxConns <= 0 {
			return fmt.Errorf("max_conns must be > 0 (got %d)", s.MaxConns)
		}
		if s.MinConns < 0 || s.MinConns > s.MaxConns {
			return fmt.Errorf("min_conns must be in 0..max_conns (got %d)", s.MinConns)
		}
	default:
		return fmt.Errorf("unknown driver %q (want %s or %s)", s.Driver, DriverSQLite, DriverPostgres)
	}
	return nil
}

func (s *SessionConfig) validate() error {
	if s.HistoryLimit <= 0 || s.HistoryLimit > MaxHistoryLimit {
		return fmt.Errorf("history_limit must be in 1..%d (got %d)", MaxHistoryLimit, s.HistoryLimit)
	}
	if s.Debounce < 0 {
		return fmt.Errorf("debounce must be >= 0 (got %v)", s.Debounce)
	}
	if s.LookupTimeout < 0 {
		return fmt.Errorf("lookup_timeout must be >= 0 (got %v)", s.LookupTimeout)
	}
	return nil
}
