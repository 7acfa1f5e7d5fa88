package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	RateLimit      RateLimitConfig
	Recommendation RecommendationConfig
	Events         EventsConfig
}

type ServerConfig struct {
	Host        string `validate:"required"`
	Port        int    `validate:"min=1,max=65535"`
	Secure      bool   // Send HSTS header
	Environment string `validate:"oneof=development production test"`
	LogLevel    string `validate:"oneof=debug info warn error"`
}

type DatabaseConfig struct {
	Host           string `validate:"required"`
	Port           int    `validate:"min=1,max=65535"`
	User           string `validate:"required"`
	Password       string
	DBName         string `validate:"required"`
	SSLMode        string `validate:"required"`
	MigrationsPath string `validate:"required"`
}

type RedisConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"min=1,max=65535"`
	Password string
	DB       int `validate:"min=0"`
}

// RateLimitConfig throttles /api/ routes per client IP. A zero Requests
// value disables the limiter.
type RateLimitConfig struct {
	Requests int64         `validate:"min=0"`
	Window   time.Duration `validate:"required"`
}

type RecommendationConfig struct {
	PageSize       int           `validate:"min=1"`
	FetchLimit     int           `validate:"gtefield=PageSize"`
	FetchTimeout   time.Duration `validate:"required"`
	FetchRetries   int           `validate:"min=0,max=10"`
	MaxConcurrency int           `validate:"min=0"` // 0 = unbounded
	FallbackCity   string        `validate:"required"`
}

type EventsConfig struct {
	Provider string   `validate:"oneof=kafka log none"`
	Brokers  []string `validate:"required_if=Provider kafka"`
	Topic    string   `validate:"required"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// loadDotEnv is swapped in tests.
var loadDotEnv = func() error { return godotenv.Load() }

func Load() (*Config, error) {
	env := getEnv("APP_ENV", "development")
	if env != "production" {
		// A missing .env file is normal; real environment variables win.
		_ = loadDotEnv()
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        getEnv("SERVER_HOST", "0.0.0.0"),
			Port:        getEnvInt("SERVER_PORT", 8080),
			Secure:      getEnvBool("SERVER_SECURE", false),
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnvInt("DB_PORT", 5432),
			User:           getEnv("DB_USER", "eventplanner"),
			Password:       getEnv("DB_PASSWORD", "eventplanner"),
			DBName:         getEnv("DB_NAME", "eventplanner"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MigrationsPath: getEnv("DB_MIGRATIONS_PATH", "migrations"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			Requests: int64(getEnvInt("API_RATE_LIMIT", 0)),
			Window:   getEnvDuration("API_RATE_LIMIT_WINDOW", time.Minute),
		},
		Recommendation: RecommendationConfig{
			PageSize:       getEnvInt("RECOMMENDATION_PAGE_SIZE", 20),
			FetchLimit:     getEnvInt("RECOMMENDATION_FETCH_LIMIT", 25),
			FetchTimeout:   getEnvDuration("RECOMMENDATION_FETCH_TIMEOUT", 3*time.Second),
			FetchRetries:   getEnvInt("RECOMMENDATION_FETCH_RETRIES", 2),
			MaxConcurrency: getEnvInt("RECOMMENDATION_MAX_CONCURRENCY", 4),
			FallbackCity:   getEnv("RECOMMENDATION_FALLBACK_CITY", "Mumbai"),
		},
		Events: EventsConfig{
			Provider: getEnv("EVENTS_PROVIDER", "log"),
			Brokers:  getEnvList("KAFKA_BROKERS", nil),
			Topic:    getEnv("EVENTS_TOPIC", "event-planning.recommendations"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks the struct tags on every section.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// DefaultRecommendationConfig returns the values Load uses when nothing is set.
func DefaultRecommendationConfig() RecommendationConfig {
	return RecommendationConfig{
		PageSize:       20,
		FetchLimit:     25,
		FetchTimeout:   3 * time.Second,
		FetchRetries:   2,
		MaxConcurrency: 4,
		FallbackCity:   "Mumbai",
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
