package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Search    SearchConfig
	Cache     CacheConfig
	Storage   StorageConfig
	FX        FXConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SearchConfig holds search flow configuration
type SearchConfig struct {
	Delay time.Duration `mapstructure:"delay"` // artificial wait before results
	Debug bool          `mapstructure:"debug"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type    string        `mapstructure:"type"` // "memory"
	TTL     time.Duration `mapstructure:"ttl"`
	Enabled bool          `mapstructure:"enabled"` // caches search results; FX rates are always cached
}

// StorageConfig holds search history storage configuration
type StorageConfig struct {
	Type         string `mapstructure:"type"` // "memory" or "postgres"
	DatabaseURL  string `mapstructure:"database_url"`
	HistoryLimit int    `mapstructure:"history_limit"`
}

// FXConfig holds exchange rate API configuration
type FXConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	BaseURL           string        `mapstructure:"base_url"`
	ReferenceCurrency string        `mapstructure:"reference_currency"`
	TTL               time.Duration `mapstructure:"ttl"`
	Debug             bool          `mapstructure:"debug"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pricelens/")

	// Environment variable settings, e.g. PRICELENS_SERVER_PORT
	v.SetEnvPrefix("PRICELENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads a .env file from the working directory if present.
// Variables already set in the environment win.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(".env")
}

// setDefaults sets default configuration values.
// Every key needs a default so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Search defaults
	v.SetDefault("search.delay", "2s")
	v.SetDefault("search.debug", false)

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "10m")
	v.SetDefault("cache.enabled", false)

	// Storage defaults
	v.SetDefault("storage.type", "memory")
	v.SetDefault("storage.database_url", "")
	v.SetDefault("storage.history_limit", 50)

	// FX defaults
	v.SetDefault("fx.enabled", false)
	v.SetDefault("fx.base_url", "https://api.frankfurter.app")
	v.SetDefault("fx.reference_currency", "USD")
	v.SetDefault("fx.ttl", "1h")
	v.SetDefault("fx.debug", false)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Cache.Type != "memory" {
		return fmt.Errorf("cache type must be 'memory', got: %s", config.Cache.Type)
	}

	if config.Storage.Type != "memory" && config.Storage.Type != "postgres" {
		return fmt.Errorf("storage type must be 'memory' or 'postgres', got: %s", config.Storage.Type)
	}

	if config.Storage.Type == "postgres" && config.Storage.DatabaseURL == "" {
		return fmt.Errorf("database URL is required when storage type is 'postgres' (set PRICELENS_STORAGE_DATABASE_URL)")
	}

	if config.FX.Enabled && config.FX.BaseURL == "" {
		return fmt.Errorf("FX base URL is required when FX is enabled")
	}

	if config.Search.Delay < 0 {
		return fmt.Errorf("search delay must not be negative, got: %s", config.Search.Delay)
	}

	return nil
}
