package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RedisConfig holds assessment-cache connection parameters. An empty Addr
// disables Redis and falls back to the in-memory cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// KafkaConfig holds event-publishing parameters. An empty broker list
// disables Kafka and falls back to the logging publisher.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Config is the full service configuration, sourced from the environment.
type Config struct {
	GRPCPort    int
	HTTPPort    int
	DatabaseURL string
	Redis       RedisConfig
	Kafka       KafkaConfig
	LogLevel    string
	LogFormat   string
	ServiceName string
}

// Load reads configuration from the environment with development defaults.
// All external collaborators (database, Redis, Kafka) are optional; the
// service runs fully in-memory without them.
func Load() Config {
	return Config{
		GRPCPort:    getEnvInt("GRPC_PORT", 9094),
		HTTPPort:    getEnvInt("HTTP_PORT", 8094),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("ASSESSMENT_CACHE_TTL", time.Hour),
		},
		Kafka: KafkaConfig{
			Brokers: splitNonEmpty(getEnv("KAFKA_BROKERS", "")),
			Topic:   getEnv("KAFKA_TOPIC", "financing.events"),
		},
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		ServiceName: "financing-service",
	}
}

// GRPCAddr returns the gRPC listen address.
func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// HTTPAddr returns the HTTP listen address.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitNonEmpty(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
