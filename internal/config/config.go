// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `json:"server"`
	Redis     RedisConfig     `json:"redis"`
	NATS      NATSConfig      `json:"nats"`
	Detector  DetectorConfig  `json:"detector"`
	Logging   LoggingConfig   `json:"logging"`
	RateLimit RateLimitConfig `json:"rate_limit"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int           `json:"port"`
	Host         string        `json:"host"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout"`
}

// RedisConfig contains Redis configuration for the result cache
type RedisConfig struct {
	Enabled  bool   `json:"enabled"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

// NATSConfig contains NATS configuration for the detection worker
type NATSConfig struct {
	URL     string `json:"url"`
	Subject string `json:"subject"`
}

// DetectorConfig contains detection engine configuration
type DetectorConfig struct {
	// Languages restricts the catalog by ISO 639-1 code; empty means all.
	Languages               []string      `json:"languages"`
	MinimumRelativeDistance float64       `json:"minimum_relative_distance"`
	MaxTextBytes            int           `json:"max_text_bytes"`
	CacheTTL                time.Duration `json:"cache_ttl"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `json:"level"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	RequestsPerMinute int `json:"requests_per_minute"`
	Burst             int `json:"burst"`
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvInt("PORT", 8080),
			Host:         getEnv("HOST", "0.0.0.0"),
			ReadTimeout:  time.Duration(getEnvInt("READ_TIMEOUT", 10)) * time.Second,
			WriteTimeout: time.Duration(getEnvInt("WRITE_TIMEOUT", 10)) * time.Second,
			IdleTimeout:  time.Duration(getEnvInt("IDLE_TIMEOUT", 60)) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		NATS: NATSConfig{
			URL:     getEnv("NATS_URL", "nats://localhost:4222"),
			Subject: getEnv("NATS_SUBJECT", "glossa.detect.requests"),
		},
		Detector: DetectorConfig{
			Languages:               getEnvList("DETECTOR_LANGUAGES", nil),
			MinimumRelativeDistance: getEnvFloat("DETECTOR_MIN_RELATIVE_DISTANCE", 0.0),
			MaxTextBytes:            getEnvInt("DETECTOR_MAX_TEXT_BYTES", 1<<20),
			CacheTTL:                time.Duration(getEnvInt("DETECTOR_CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getEnvInt("RATE_LIMIT_REQUESTS_PER_MINUTE", 1000),
			Burst:             getEnvInt("RATE_LIMIT_BURST", 100),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
