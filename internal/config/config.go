// internal/config/config.go

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Environment string
	Log         LogConfig
	Server      ServerConfig
	NATS        NATSConfig
	Suggest     SuggestConfig
	Trend       TrendConfig
	Cache       CacheConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CorsOrigins     []string
}

// NATSConfig holds NATS configuration. An empty URL disables event publishing.
type NATSConfig struct {
	URL            string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectTimeout time.Duration
	EventsTopic    string
}

// SuggestConfig holds the text-generation service configuration
type SuggestConfig struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// TrendConfig holds trend scoring and post source configuration
type TrendConfig struct {
	FloorNegativeLikes bool
	JitterMin          int
	JitterMax          int
}

// CacheConfig holds the recent-run cache configuration
type CacheConfig struct {
	RunCacheSize int
}

// LoadDotEnv reads KEY=VALUE pairs from the first existing file into the
// environment. Variables already set are kept. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		err := godotenv.Load(path)
		if err == nil {
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error loading %s: %w", path, err)
		}
	}
	return nil
}

// Load loads configuration from environment variables
func Load() (Config, error) {
	config := Config{
		Environment: getEnv("APP_ENV", "development"),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 90*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CorsOrigins:     getEnvAsSlice("SERVER_CORS_ORIGINS", []string{"*"}),
		},
		NATS: NATSConfig{
			URL:            getEnv("NATS_URL", ""),
			MaxReconnects:  getEnvAsInt("NATS_MAX_RECONNECTS", 10),
			ReconnectWait:  getEnvAsDuration("NATS_RECONNECT_WAIT", 1*time.Second),
			ConnectTimeout: getEnvAsDuration("NATS_CONNECT_TIMEOUT", 2*time.Second),
			EventsTopic:    getEnv("NATS_EVENTS_TOPIC", "foodtrend"),
		},
		Suggest: SuggestConfig{
			BaseURL:   getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
			APIKey:    getEnv("ANTHROPIC_API_KEY", ""),
			Model:     getEnv("SUGGEST_MODEL", "claude-sonnet-4-5"),
			MaxTokens: getEnvAsInt("SUGGEST_MAX_TOKENS", 1024),
			Timeout:   getEnvAsDuration("SUGGEST_TIMEOUT", 60*time.Second),
		},
		Trend: TrendConfig{
			FloorNegativeLikes: getEnvAsBool("TREND_FLOOR_NEGATIVE_LIKES", false),
			JitterMin:          getEnvAsInt("TREND_JITTER_MIN", -100),
			JitterMax:          getEnvAsInt("TREND_JITTER_MAX", 500),
		},
		Cache: CacheConfig{
			RunCacheSize: getEnvAsInt("RUN_CACHE_SIZE", 64),
		},
	}

	return config, validate(config)
}

// validate checks if config is valid
func validate(config Config) error {
	if config.Trend.JitterMax < config.Trend.JitterMin {
		return fmt.Errorf("trend jitter max %d is below jitter min %d", config.Trend.JitterMax, config.Trend.JitterMin)
	}
	if config.Suggest.Timeout <= 0 {
		return fmt.Errorf("suggest timeout must be positive")
	}
	if config.Suggest.MaxTokens <= 0 {
		return fmt.Errorf("suggest max tokens must be positive")
	}
	if config.Cache.RunCacheSize <= 0 {
		return fmt.Errorf("run cache size must be positive")
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
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
