package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tair/supply-agent/pkg/database"
)

// AppConfig holds the runtime configuration for the supply agent service.
// Everything is injected through environment variables with local defaults.
type AppConfig struct {
	ServiceName string
	Environment string
	LogLevel    string
	HTTPPort    string

	Database database.Config

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers []string
	KafkaEnabled bool

	// Rate limit on the simulate endpoint
	SimulateRateLimit  int
	SimulateRateWindow time.Duration

	// TTL for cached product snapshots
	ProductCacheTTL time.Duration
}

// Load reads and validates configuration from the environment
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		ServiceName: getEnv("OTEL_SERVICE_NAME", "supply-agent"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPPort:    getEnv("HTTP_PORT", "8084"),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "supplyagentdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:  splitCSV(getEnv("KAFKA_BROKERS", "localhost:9092")),
		KafkaEnabled:  getEnv("KAFKA_ENABLED", "true") == "true",
	}

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cfg.RedisDB = redisDB

	rateLimit, err := getEnvInt("SIMULATE_RATE_LIMIT", 60)
	if err != nil {
		return nil, fmt.Errorf("invalid SIMULATE_RATE_LIMIT: %w", err)
	}
	if rateLimit <= 0 {
		return nil, fmt.Errorf("SIMULATE_RATE_LIMIT must be > 0")
	}
	cfg.SimulateRateLimit = rateLimit

	windowSec, err := getEnvInt("SIMULATE_RATE_WINDOW_SEC", 60)
	if err != nil {
		return nil, fmt.Errorf("invalid SIMULATE_RATE_WINDOW_SEC: %w", err)
	}
	if windowSec <= 0 {
		return nil, fmt.Errorf("SIMULATE_RATE_WINDOW_SEC must be > 0")
	}
	cfg.SimulateRateWindow = time.Duration(windowSec) * time.Second

	cacheTTLSec, err := getEnvInt("PRODUCT_CACHE_TTL_SEC", 30)
	if err != nil {
		return nil, fmt.Errorf("invalid PRODUCT_CACHE_TTL_SEC: %w", err)
	}
	if cacheTTLSec <= 0 {
		return nil, fmt.Errorf("PRODUCT_CACHE_TTL_SEC must be > 0")
	}
	cfg.ProductCacheTTL = time.Duration(cacheTTLSec) * time.Second

	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, fmt.Errorf("KAFKA_BROKERS must not be empty when Kafka is enabled")
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs in development mode
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
