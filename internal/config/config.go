package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Common
	Environment string
	LogLevel    string

	// Market data provider
	Provider ProviderConfig

	// Bundle cache
	Cache CacheConfig

	// Analysis pipeline
	Analysis AnalysisConfig

	// REST API
	API APIConfig
}

// ProviderConfig holds market data provider configuration
type ProviderConfig struct {
	Name      string // "yahoo" or "mock"
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// CacheConfig holds bundle cache configuration
type CacheConfig struct {
	Enabled     bool
	Redis       RedisConfig
	IntradayTTL time.Duration // TTL for minute-resolution bundles
	DailyTTL    time.Duration // TTL for daily-resolution bundles
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host         string
	Port         int
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// AnalysisConfig holds analysis pipeline configuration
type AnalysisConfig struct {
	EnableEMAOverlay bool // attach an ema overlay alongside sma_20/rsi_14
	EMAPeriod        int
}

// APIConfig holds REST API configuration
type APIConfig struct {
	Port            int
	HealthCheckPort int
	RateLimitRPS    int
}

// Load loads configuration from environment variables
// It automatically loads .env file if it exists in the current directory
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Provider: ProviderConfig{
			Name:      getEnv("PROVIDER_NAME", "yahoo"),
			BaseURL:   getEnv("PROVIDER_BASE_URL", ""),
			UserAgent: getEnv("PROVIDER_USER_AGENT", ""),
			Timeout:   getEnvAsDuration("PROVIDER_TIMEOUT", 30*time.Second),
		},
		Cache: CacheConfig{
			Enabled: getEnvAsBool("CACHE_ENABLED", false),
			Redis: RedisConfig{
				Host:         getEnv("REDIS_HOST", "localhost"),
				Port:         getEnvAsInt("REDIS_PORT", 6379),
				Password:     getEnv("REDIS_PASSWORD", ""),
				DB:           getEnvAsInt("REDIS_DB", 0),
				PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
				MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
			},
			IntradayTTL: getEnvAsDuration("CACHE_INTRADAY_TTL", 1*time.Minute),
			DailyTTL:    getEnvAsDuration("CACHE_DAILY_TTL", 15*time.Minute),
		},
		Analysis: AnalysisConfig{
			EnableEMAOverlay: getEnvAsBool("ANALYSIS_ENABLE_EMA_OVERLAY", false),
			EMAPeriod:        getEnvAsInt("ANALYSIS_EMA_PERIOD", 20),
		},
		API: APIConfig{
			Port:            getEnvAsInt("API_PORT", 8080),
			HealthCheckPort: getEnvAsInt("API_HEALTH_PORT", 8081),
			RateLimitRPS:    getEnvAsInt("API_RATE_LIMIT_RPS", 20),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Provider.Name == "" {
		return fmt.Errorf("PROVIDER_NAME is required")
	}
	if c.Cache.Enabled && c.Cache.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required when the cache is enabled")
	}
	if c.Analysis.EMAPeriod < 1 {
		return fmt.Errorf("ANALYSIS_EMA_PERIOD must be at least 1")
	}
	if c.API.Port <= 0 {
		return fmt.Errorf("API_PORT must be positive")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
