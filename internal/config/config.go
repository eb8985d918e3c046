package config

import "time"

// Config is the root application configuration.
type Config struct {
	Lexicon   LexiconConfig   `yaml:"lexicon"`
	Storage   StorageConfig   `yaml:"storage"`
	Session   SessionConfig   `yaml:"session"`
	Server    ServerConfig    `yaml:"server"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
}

// LexiconConfig holds settings for the remote dictionary API.
type LexiconConfig struct {
	BaseURL       string        `yaml:"base_url"        env:"LEXICON_BASE_URL"        env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	Timeout       time.Duration `yaml:"timeout"         env:"LEXICON_TIMEOUT"         env-default:"10s"`
	RatePerSecond float64       `yaml:"rate_per_second" env:"LEXICON_RATE_PER_SECOND" env-default:"0"`
	UserAgent     string        `yaml:"user_agent"      env:"LEXICON_USER_AGENT"`
}

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// StorageConfig selects and configures the durable key/value store.
type StorageConfig struct {
	Driver          string        `yaml:"driver"             env:"STORAGE_DRIVER"             env-default:"sqlite"`
	SQLitePath      string        `yaml:"sqlite_path"        env:"STORAGE_SQLITE_PATH"`
	PostgresDSN     string        `yaml:"postgres_dsn"       env:"STORAGE_POSTGRES_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"STORAGE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"STORAGE_MIN_CONNS"          env-default:"0"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"STORAGE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"STORAGE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// MaxHistoryLimit is the largest accepted session.history_limit.
const MaxHistoryLimit = 10

// SessionConfig holds search session behaviour.
type SessionConfig struct {
	HistoryLimit  int           `yaml:"history_limit"  env:"SESSION_HISTORY_LIMIT"  env-default:"10"`
	LiveSearch    bool          `yaml:"live_search"    env:"SESSION_LIVE_SEARCH"`
	Debounce      time.Duration `yaml:"debounce"       env:"SESSION_DEBOUNCE"       env-default:"350ms"`
	LookupTimeout time.Duration `yaml:"lookup_timeout" env:"SESSION_LOOKUP_TIMEOUT" env-default:"0s"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig limits search requests per client IP on the HTTP surface.
type RateLimitConfig struct {
	SearchPerMinute int           `yaml:"search_per_minute" env:"RATE_LIMIT_SEARCH_PER_MINUTE" env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Addr returns the listen address of the HTTP server.
func (c ServerConfig) Addr() string {
	return joinHostPort(c.Host, c.Port)
}
