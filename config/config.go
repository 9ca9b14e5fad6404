// Package config loads application settings from the environment, reading a
// .env file first when one exists.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Preference storage backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Refresh sources.
const (
	SourceSimulated = "simulated"
	SourceGemini    = "gemini"
)

// Config holds application configuration.
type Config struct {
	App     AppConfig
	Server  ServerConfig
	JWT     JWTConfig
	Prefs   PrefsConfig
	Redis   RedisConfig
	Refresh RefreshConfig
	Gemini  GeminiConfig
}

type AppConfig struct {
	Environment string
	LogLevel    string
	SeedFile    string
	// SystemTheme is what the "system" theme resolves to: light or dark.
	SystemTheme string
}

type ServerConfig struct {
	Port string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type PrefsConfig struct {
	Backend     string
	Key         string
	SQLitePath  string
	DatabaseURL string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RefreshConfig struct {
	Source  string
	Delay   time.Duration
	Timeout time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// IsProduction reports whether APP_ENV is "production".
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Load reads the configuration and validates it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := getInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	jwtTTL, err := getDuration("JWT_TTL", 72*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshDelay, err := getDuration("REFRESH_DELAY", time.Second)
	if err != nil {
		return nil, err
	}
	refreshTimeout, err := getDuration("REFRESH_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			SeedFile:    getEnv("SEED_FILE", ""),
			SystemTheme: strings.ToLower(getEnv("SYSTEM_THEME", "light")),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
			TTL:    jwtTTL,
		},
		Prefs: PrefsConfig{
			Backend:     strings.ToLower(getEnv("PREFS_BACKEND", BackendMemory)),
			Key:         getEnv("PREFS_KEY", "smartstock-dashboard"),
			SQLitePath:  getEnv("SQLITE_PATH", "smartstock.db"),
			DatabaseURL: getEnv("DATABASE_URL", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Refresh: RefreshConfig{
			Source:  strings.ToLower(getEnv("REFRESH_SOURCE", SourceSimulated)),
			Delay:   refreshDelay,
			Timeout: refreshTimeout,
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidateServe checks the settings only the HTTP server needs.
func (c *Config) ValidateServe() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	return nil
}

// Validate checks the combinations Load cannot default.
func (c *Config) Validate() error {
	switch c.Prefs.Backend {
	case BackendMemory, BackendSQLite, BackendRedis:
	case BackendPostgres:
		if c.Prefs.DatabaseURL == "" {
			return errors.New("DATABASE_URL is not set")
		}
	default:
		return fmt.Errorf("unknown PREFS_BACKEND %q", c.Prefs.Backend)
	}
	switch c.Refresh.Source {
	case SourceSimulated:
	case SourceGemini:
		if c.Gemini.APIKey == "" {
			return errors.New("GEMINI_API_KEY is not set")
		}
	default:
		return fmt.Errorf("unknown REFRESH_SOURCE %q", c.Refresh.Source)
	}
	if c.App.SystemTheme != "light" && c.App.SystemTheme != "dark" {
		return fmt.Errorf("SYSTEM_THEME must be light or dark, got %q", c.App.SystemTheme)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
