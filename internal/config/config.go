package config

import (
	"strings"
	"time"
)

// Data source modes.
const (
	DataSourceLive    = "live"
	DataSourceFixture = "fixture"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	DataSource DataSourceConfig `yaml:"data_source"`
	Supabase   SupabaseConfig   `yaml:"supabase"`
	Site       SiteConfig       `yaml:"site"`
	Session    SessionConfig    `yaml:"session"`
	Redis      RedisConfig      `yaml:"redis"`
	Search     SearchConfig     `yaml:"search"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins splits AllowedOrigins into a list.
func (c CORSConfig) Origins() []string { return splitCSV(c.AllowedOrigins) }

// Methods splits AllowedMethods into a list.
func (c CORSConfig) Methods() []string { return splitCSV(c.AllowedMethods) }

// Headers splits AllowedHeaders into a list.
func (c CORSConfig) Headers() []string { return splitCSV(c.AllowedHeaders) }

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// DSN is required only when the live data source is selected.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"false"`
}

// DataSourceConfig selects the data source implementation at startup.
type DataSourceConfig struct {
	Mode string `yaml:"mode" env:"DATA_SOURCE" env-default:"live"`
}

// IsFixture reports whether the in-memory fixture data source is selected.
func (c DataSourceConfig) IsFixture() bool {
	return strings.EqualFold(c.Mode, DataSourceFixture)
}

// SupabaseConfig holds the hosted identity service settings.
type SupabaseConfig struct {
	URL       string        `yaml:"url"        env:"SUPABASE_URL"`
	AnonKey   string        `yaml:"anon_key"   env:"SUPABASE_ANON_KEY"`
	JWTSecret string        `yaml:"jwt_secret" env:"SUPABASE_JWT_SECRET"`
	Timeout   time.Duration `yaml:"timeout"    env:"SUPABASE_TIMEOUT"    env-default:"10s"`
}

// SiteConfig holds the public site settings.
type SiteConfig struct {
	URL       string `yaml:"url"        env:"SITE_URL"        env-default:"http://localhost:3000"`
	LoginPath string `yaml:"login_path" env:"SITE_LOGIN_PATH" env-default:"/login"`
	ErrorPath string `yaml:"error_path" env:"SITE_ERROR_PATH" env-default:"/auth/error"`
}

// CallbackURL returns the email confirmation callback URL of the site.
func (c SiteConfig) CallbackURL() string {
	return strings.TrimRight(c.URL, "/") + "/auth/callback"
}

// SessionConfig holds session cookie settings.
type SessionConfig struct {
	AccessCookie   string        `yaml:"access_cookie"   env:"SESSION_ACCESS_COOKIE"   env-default:"sb-access-token"`
	RefreshCookie  string        `yaml:"refresh_cookie"  env:"SESSION_REFRESH_COOKIE"  env-default:"sb-refresh-token"`
	VerifierCookie string        `yaml:"verifier_cookie" env:"SESSION_VERIFIER_COOKIE" env-default:"sb-code-verifier"`
	ThemeCookie    string        `yaml:"theme_cookie"    env:"SESSION_THEME_COOKIE"    env-default:"theme-storage"`
	Secure         bool          `yaml:"secure"          env:"SESSION_SECURE"          env-default:"false"`
	MaxAge         time.Duration `yaml:"max_age"         env:"SESSION_MAX_AGE"         env-default:"720h"`
}

// RedisConfig holds the search result store settings.
// An empty Addr selects the in-process store.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// SearchConfig holds search engine settings.
type SearchConfig struct {
	ResultTTL       time.Duration `yaml:"result_ttl"        env:"SEARCH_RESULT_TTL"        env-default:"1h"`
	ResultStoreSize int           `yaml:"result_store_size" env:"SEARCH_RESULT_STORE_SIZE" env-default:"1000"`
	// HistoryRetentionDays is how long unsaved history entries are kept
	// by the cleanup command.
	HistoryRetentionDays int `yaml:"history_retention_days" env:"SEARCH_HISTORY_RETENTION_DAYS" env-default:"90"`
}

// RateLimitConfig holds per-IP limits for the sign-in and sign-up endpoints.
type RateLimitConfig struct {
	AuthPerMinute int `yaml:"auth_per_minute" env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

func splitCSV(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
