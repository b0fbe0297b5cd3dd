// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// SchedulerConfig provides settings for the asynq refresh queue.
type SchedulerConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
}

// UpdaterConfig provides settings for the batch update pipeline.
type UpdaterConfig interface {
	GetUpdateBatchSize() int
	GetUpdateBatchPause() time.Duration
}

// SourcesConfig provides settings for the upstream source adapters.
type SourcesConfig interface {
	GetSourceHTTPTimeout() time.Duration
	GetSourceExpenseMonth() int
	GetSourcesConfigPath() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                string
	HTTPAddr           string
	DatabaseURL        string
	MigrationsDir      string
	CORSAllowAll       bool
	CORSOrigins        []string
	RedisURL           string
	RedisTLSInsecure   bool
	AsynqQueueName     string
	AsynqConcurrency   int
	UpdateBatchSize    int
	UpdateBatchPause   time.Duration
	SourceHTTPTimeout  time.Duration
	SourceExpenseMonth int
	SourcesConfigPath  string
}

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// SchedulerConfig implementation
func (c *Config) GetRedisURL() string      { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool { return c.RedisTLSInsecure }
func (c *Config) GetAsynqQueueName() string { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int  { return c.AsynqConcurrency }

// UpdaterConfig implementation
func (c *Config) GetUpdateBatchSize() int            { return c.UpdateBatchSize }
func (c *Config) GetUpdateBatchPause() time.Duration { return c.UpdateBatchPause }

// SourcesConfig implementation
func (c *Config) GetSourceHTTPTimeout() time.Duration { return c.SourceHTTPTimeout }
func (c *Config) GetSourceExpenseMonth() int          { return c.SourceExpenseMonth }
func (c *Config) GetSourcesConfigPath() string        { return c.SourcesConfigPath }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		MigrationsDir:      getEnv("MIGRATIONS_DIR", "migrations"),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		RedisURL:           getEnv("REDIS_URL", ""),
		RedisTLSInsecure:   strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		AsynqQueueName:     getEnv("ASYNQ_QUEUE", "default"),
		AsynqConcurrency:   mustInt(getEnv("ASYNQ_CONCURRENCY", "10")),
		UpdateBatchSize:    mustInt(getEnv("UPDATE_BATCH_SIZE", "4")),
		UpdateBatchPause:   mustDuration(getEnv("UPDATE_BATCH_PAUSE", "2s")),
		SourceHTTPTimeout:  mustDuration(getEnv("SOURCE_HTTP_TIMEOUT", "15s")),
		SourceExpenseMonth: mustInt(getEnv("SOURCE_EXPENSE_MONTH", "0")),
		SourcesConfigPath:  getEnv("SOURCES_CONFIG_PATH", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.UpdateBatchSize < 1 {
		return nil, fmt.Errorf("UPDATE_BATCH_SIZE must be at least 1")
	}
	if cfg.SourceHTTPTimeout < time.Second {
		return nil, fmt.Errorf("SOURCE_HTTP_TIMEOUT must be at least 1s")
	}
	if cfg.SourceExpenseMonth < 0 || cfg.SourceExpenseMonth > 12 {
		return nil, fmt.Errorf("SOURCE_EXPENSE_MONTH must be between 1 and 12, or 0 to disable")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
