package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Cache    CacheConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// UpstreamConfig holds the HR API connection settings.
type UpstreamConfig struct {
	BaseURL         string
	RequestTimeout  time.Duration
	RefreshInterval time.Duration
}

// CacheConfig holds the snapshot cache settings. An empty path disables
// the offline fallback cache.
type CacheConfig struct {
	Path string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:4200"),
	}

	// Upstream HR API configuration
	requestTimeout, err := time.ParseDuration(getEnv("HR_API_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HR_API_TIMEOUT: %w", err)
	}

	refreshInterval, err := time.ParseDuration(getEnv("REFRESH_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}

	config.Upstream = UpstreamConfig{
		BaseURL:         getEnv("HR_API_BASE_URL", ""),
		RequestTimeout:  requestTimeout,
		RefreshInterval: refreshInterval,
	}

	config.Cache = CacheConfig{
		Path: getEnv("SNAPSHOT_CACHE_PATH", "data/upstream.db"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("HR_API_BASE_URL is required")
	}
	if c.Upstream.RefreshInterval < time.Second {
		return fmt.Errorf("REFRESH_INTERVAL must be at least 1s")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
