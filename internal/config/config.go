package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig

	// Database Configuration
	Database DatabaseConfig

	// Redis Configuration (dispatcher backend)
	Redis RedisConfig

	// Scheduler Configuration
	Scheduler SchedulerConfig

	// Sync Configuration
	Sync SyncConfig

	// Remote platform Configuration
	Twitter TwitterConfig

	// Logging Configuration
	Logging LoggingConfig
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port         string `json:"port"`
	Host         string `json:"host"`
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
	Environment  string `json:"environment"` // development, staging, production
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

// RedisConfig contains connection settings for the redis-backed job dispatcher.
type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

// SchedulerConfig contains scheduled-publish configuration
type SchedulerConfig struct {
	Workers          int `json:"workers"`            // Number of dispatcher worker goroutines
	QueueSize        int `json:"queue_size"`         // Fired-job channel buffer size
	MaxTextLength    int `json:"max_text_length"`    // Hard cap on post text
	PastToleranceSec int `json:"past_tolerance_sec"` // Clock-skew grace for fire times
	PollIntervalSec  int `json:"poll_interval_sec"`  // Redis dispatcher poll cadence
}

// SyncConfig contains timeline reconciliation configuration
type SyncConfig struct {
	MinIntervalMin    int `json:"min_interval_min"`    // Minimum minutes between passes per owner
	QuarantineMin     int `json:"quarantine_min"`      // Skip remote items younger than this
	WorkerIntervalMin int `json:"worker_interval_min"` // Sync worker loop cadence
	RemoteFetchLimit  int `json:"remote_fetch_limit"`  // Max timeline items per fetch
}

// TwitterConfig contains the remote platform API settings
type TwitterConfig struct {
	BaseURL      string `json:"base_url"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

// PastTolerance is the grace period applied when validating fire times.
func (cfg *Config) PastTolerance() time.Duration {
	return time.Duration(cfg.Scheduler.PastToleranceSec) * time.Second
}

// SyncMinInterval is the minimum gap between reconciliation passes per owner.
func (cfg *Config) SyncMinInterval() time.Duration {
	return time.Duration(cfg.Sync.MinIntervalMin) * time.Minute
}

// QuarantineWindow is how recent a remote item must be for sync to skip it.
func (cfg *Config) QuarantineWindow() time.Duration {
	return time.Duration(cfg.Sync.QuarantineMin) * time.Minute
}

// LoadConfig reads .env if present and builds the configuration from the
// environment with defaults suitable for local development.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "7010"),
			Host:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:  getEnvIntOrDefault("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvIntOrDefault("SERVER_WRITE_TIMEOUT", 15),
			Environment:  getEnvOrDefault("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnvOrDefault("DB_HOST", "localhost"),
			Port:         getEnvOrDefault("DB_PORT", "3306"),
			Username:     getEnvOrDefault("DB_USER", "postsched"),
			Password:     getEnvOrDefault("DB_PASSWORD", "postsched123"),
			DatabaseName: getEnvOrDefault("DB_NAME", "postsched"),
			MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 5),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       getEnvIntOrDefault("REDIS_DB", 0),
		},
		Scheduler: SchedulerConfig{
			Workers:          getEnvIntOrDefault("SCHEDULER_WORKERS", 4),
			QueueSize:        getEnvIntOrDefault("SCHEDULER_QUEUE_SIZE", 1000),
			MaxTextLength:    getEnvIntOrDefault("SCHEDULER_MAX_TEXT_LENGTH", 140),
			PastToleranceSec: getEnvIntOrDefault("SCHEDULER_PAST_TOLERANCE_SEC", 60),
			PollIntervalSec:  getEnvIntOrDefault("SCHEDULER_POLL_INTERVAL_SEC", 1),
		},
		Sync: SyncConfig{
			MinIntervalMin:    getEnvIntOrDefault("SYNC_MIN_INTERVAL_MIN", 15),
			QuarantineMin:     getEnvIntOrDefault("SYNC_QUARANTINE_MIN", 5),
			WorkerIntervalMin: getEnvIntOrDefault("SYNC_WORKER_INTERVAL_MIN", 10),
			RemoteFetchLimit:  getEnvIntOrDefault("SYNC_REMOTE_FETCH_LIMIT", 50),
		},
		Twitter: TwitterConfig{
			BaseURL:      getEnvOrDefault("TWITTER_BASE_URL", "https://api.twitter.com"),
			ClientID:     getEnvOrDefault("TWITTER_CLIENT_ID", ""),
			ClientSecret: getEnvOrDefault("TWITTER_CLIENT_SECRET", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
		},
	}
}

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
