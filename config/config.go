// ABOUTME: This file handles configuration management for feed-sync-engine
// ABOUTME: Loads environment variables and validates provider/vault settings

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the feed-sync-engine service.
type Config struct {
	ServiceName string
	LogLevel    string

	Database    DatabaseConfig
	Provider    ProviderConfig
	Vault       VaultConfig
	Sync        SyncConfig
	Queue       QueueConfig
	Content     ContentConfig
	Server      ServerConfig
	Maintenance MaintenanceConfig
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

// ProviderConfig holds the feed-aggregation provider API settings.
type ProviderConfig struct {
	BaseURL         string // OAuth2 base URL
	APIBaseURL      string // reader API base URL
	ClientID        string
	ClientSecret    string
	Zone1DailyLimit int
	Zone2DailyLimit int
}

// VaultConfig holds encrypted credential file settings.
type VaultConfig struct {
	CredentialFile string
	Passphrase     string
	RefreshBuffer  time.Duration
}

// SyncConfig holds sync run settings.
type SyncConfig struct {
	Interval              time.Duration
	MaxArticlesPerRun     int
	MaxArticlesPerRequest int
	UpsertBatchSize       int
	RunBudget             time.Duration
	RunRetention          time.Duration
}

// QueueConfig holds mutation queue settings.
type QueueConfig struct {
	DrainBatchSize int
	DrainInterval  time.Duration
	Retention      time.Duration
}

// MaintenanceConfig holds background retention job settings.
type MaintenanceConfig struct {
	Interval time.Duration
}

// ContentConfig holds content extraction settings.
type ContentConfig struct {
	FetchRatePerSecond float64
	UserAgent          string
}

// ServerConfig holds admin API settings.
type ServerConfig struct {
	Addr string
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode)
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServiceName: getEnvOrDefault("SERVICE_NAME", "feed-sync-engine"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),

		Database: DatabaseConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			Name:     getEnvOrDefault("DB_NAME", "feedsync"),
			User:     getEnvOrDefault("FEED_SYNC_DB_USER", "feed_sync_user"),
			Password: os.Getenv("FEED_SYNC_DB_PASSWORD"), // Required from secret
			SSLMode:  getEnvOrDefault("DB_SSL_MODE", "disable"),
		},

		Provider: ProviderConfig{
			BaseURL:         getEnvOrDefault("PROVIDER_BASE_URL", "https://www.inoreader.com"),
			APIBaseURL:      getEnvOrDefault("PROVIDER_API_BASE_URL", "https://www.inoreader.com/reader/api/0"),
			ClientID:        os.Getenv("PROVIDER_CLIENT_ID"),     // Required from secret
			ClientSecret:    os.Getenv("PROVIDER_CLIENT_SECRET"), // Required from secret
			Zone1DailyLimit: getEnvIntOrDefault("PROVIDER_ZONE1_DAILY_LIMIT", 100),
			Zone2DailyLimit: getEnvIntOrDefault("PROVIDER_ZONE2_DAILY_LIMIT", 100),
		},

		Vault: VaultConfig{
			CredentialFile: getEnvOrDefault("TOKEN_VAULT_FILE", "/var/lib/feed-sync-engine/credentials.enc"),
			Passphrase:     os.Getenv("TOKEN_VAULT_PASSPHRASE"), // Required from secret
			RefreshBuffer:  getEnvDurationOrDefault("TOKEN_REFRESH_BUFFER", 5*time.Minute),
		},

		Sync: SyncConfig{
			Interval:              getEnvDurationOrDefault("SYNC_INTERVAL", 30*time.Minute),
			MaxArticlesPerRun:     getEnvIntOrDefault("SYNC_MAX_ARTICLES", 500),
			MaxArticlesPerRequest: getEnvIntOrDefault("SYNC_MAX_ARTICLES_PER_REQUEST", 100),
			UpsertBatchSize:       getEnvIntOrDefault("SYNC_UPSERT_BATCH_SIZE", 50),
			RunBudget:             getEnvDurationOrDefault("SYNC_RUN_BUDGET", 2*time.Minute),
			RunRetention:          getEnvDurationOrDefault("SYNC_RUN_RETENTION", 24*time.Hour),
		},

		Queue: QueueConfig{
			DrainBatchSize: getEnvIntOrDefault("QUEUE_DRAIN_BATCH_SIZE", 50),
			DrainInterval:  getEnvDurationOrDefault("QUEUE_DRAIN_INTERVAL", 5*time.Minute),
			Retention:      getEnvDurationOrDefault("QUEUE_RETENTION", 7*24*time.Hour),
		},

		Content: ContentConfig{
			FetchRatePerSecond: 2.0,
			UserAgent:          getEnvOrDefault("CONTENT_FETCH_USER_AGENT", "feed-sync-engine/1.0"),
		},

		Server: ServerConfig{
			Addr: getEnvOrDefault("ADMIN_API_ADDR", ":8082"),
		},

		Maintenance: MaintenanceConfig{
			Interval: getEnvDurationOrDefault("MAINTENANCE_INTERVAL", 6*time.Hour),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("FEED_SYNC_DB_PASSWORD is required")
	}

	if c.Provider.ClientID == "" {
		return fmt.Errorf("PROVIDER_CLIENT_ID is required")
	}

	if c.Provider.ClientSecret == "" {
		return fmt.Errorf("PROVIDER_CLIENT_SECRET is required")
	}

	if c.Vault.Passphrase == "" {
		return fmt.Errorf("TOKEN_VAULT_PASSPHRASE is required")
	}

	if c.Sync.MaxArticlesPerRequest <= 0 || c.Sync.MaxArticlesPerRequest > 1000 {
		return fmt.Errorf("SYNC_MAX_ARTICLES_PER_REQUEST must be between 1 and 1000")
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
