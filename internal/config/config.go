package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	SRS      SRSConfig      `mapstructure:"srs" validate:"required"`
	Digest   DigestConfig   `mapstructure:"digest"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// AllowedOrigins lists the origins permitted by CORS. Empty allows none.
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
// An empty URL runs the application on the in-memory backend.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url" validate:"omitempty,url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
}

// SRSConfig tunes the scheduler and the weak-card thresholds.
type SRSConfig struct {
	MinEaseFactor         float64 `mapstructure:"min_ease_factor" validate:"gt=0"`
	MaxEaseFactor         float64 `mapstructure:"max_ease_factor" validate:"gtefield=MinEaseFactor"`
	FailurePenalty        float64 `mapstructure:"failure_penalty" validate:"gte=0"`
	WeakEaseThreshold     float64 `mapstructure:"weak_ease_threshold" validate:"gte=0"`
	WeakAccuracyThreshold float64 `mapstructure:"weak_accuracy_threshold" validate:"gte=0,lte=100"`
}

// DigestConfig controls the daily review digest job.
type DigestConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// At is the UTC time of day the digest runs, as HH:MM.
	At string `mapstructure:"at" validate:"omitempty,datetime=15:04"`
}

// UsesDatabase reports whether a PostgreSQL database is configured.
func (c *Config) UsesDatabase() bool {
	return c.Database.URL != ""
}
