package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSupabase = "supabase"
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

type Config struct {
	// Application
	AppName       string
	AppEnv        string
	Port          string
	DefaultLocale string

	// Store (DB_DRIVER selects the backend, default: supabase)
	DBDriver     string
	DBConnection string
	SupabaseURL  string
	SupabaseKey  string
	HTTPTimeout  time.Duration

	// Reply generation (OpenAI-compatible endpoint, default: OpenRouter)
	LLMAPIKey  string
	LLMBaseURL string

	// Observability (optional)
	SentryDSN string
}

// Load reads the configuration from the environment (and .env if present).
// A missing required value is fatal.
func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := Parse(os.Getenv)
	if err != nil {
		slog.Error("config invalid", "error", err)
		os.Exit(1)
	}
	return cfg
}

// Parse builds a Config from getenv. It never exits, so it is the entry
// point for tests and tools that want to report errors themselves.
func Parse(getenv func(string) string) (*Config, error) {
	e := env{getenv: getenv}

	cfg := &Config{
		// Application
		AppName:       e.string("APP_NAME", "BrightLog"),
		AppEnv:        e.required("APP_ENV"), // Required: 'development' or 'production'
		Port:          e.string("PORT", "8090"),
		DefaultLocale: e.string("DEFAULT_LOCALE", "ja"),

		// Store
		DBDriver:    e.string("DB_DRIVER", DriverSupabase),
		HTTPTimeout: e.duration("HTTP_TIMEOUT", 30*time.Second),

		// Reply generation
		LLMAPIKey:  e.required("OPENROUTER_API_KEY"),
		LLMBaseURL: e.string("LLM_BASE_URL", "https://openrouter.ai/api/v1"),

		// Observability
		SentryDSN: e.string("SENTRY_DSN", ""),
	}

	e.store(cfg)

	if len(e.missing) > 0 {
		return nil, fmt.Errorf("required env vars missing: %v", e.missing)
	}

	return cfg, nil
}

// ParseStore reads only the store settings, for tools that never serve
// requests or call the reply model.
func ParseStore(getenv func(string) string) (*Config, error) {
	e := env{getenv: getenv}

	cfg := &Config{
		AppEnv:      e.string("APP_ENV", "development"),
		DBDriver:    e.string("DB_DRIVER", DriverSupabase),
		HTTPTimeout: e.duration("HTTP_TIMEOUT", 30*time.Second),
	}
	e.store(cfg)

	if len(e.missing) > 0 {
		return nil, fmt.Errorf("required env vars missing: %v", e.missing)
	}

	return cfg, nil
}

func (e *env) store(cfg *Config) {
	switch cfg.DBDriver {
	case DriverSupabase:
		cfg.SupabaseURL = e.required("SUPABASE_URL")
		cfg.SupabaseKey = e.required("SUPABASE_KEY")
	case DriverPostgres:
		cfg.DBConnection = e.required("DB_CONNECTION")
	case DriverSQLite:
		cfg.DBConnection = e.string("DB_CONNECTION", "./data/brightlog.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	default:
		e.missing = append(e.missing, "DB_DRIVER (supabase, pgx or sqlite)")
	}
}

type env struct {
	getenv  func(string) string
	missing []string
}

func (e *env) string(key, def string) string {
	value := e.getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func (e *env) duration(key string, def time.Duration) time.Duration {
	v := e.getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (e *env) required(key string) string {
	if v := e.getenv(key); v != "" {
		return v
	}
	e.missing = append(e.missing, key)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// UsesSQL reports whether the store is reached through database/sql.
func (c *Config) UsesSQL() bool {
	return c.DBDriver == DriverPostgres || c.DBDriver == DriverSQLite
}

// Sanitized returns a copy of the config with only public/safe fields.
// All secrets and connection strings are excluded.
// Safe to expose in ctx, templates and client-facing contexts.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:       c.AppName,
		AppEnv:        c.AppEnv,
		Port:          c.Port,
		DefaultLocale: c.DefaultLocale,
		DBDriver:      c.DBDriver,
	}
}
