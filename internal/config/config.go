package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Ranking  RankingConfig  `mapstructure:"ranking" validate:"required"`
	Notifier NotifierConfig `mapstructure:"notifier" validate:"required"`
}

// ServerConfig contains all HTTP server related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication settings for device tokens.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetime bounds how long a minted device token stays valid.
	TokenLifetime time.Duration `mapstructure:"token_lifetime" validate:"required"`
}

// RankingConfig contains the tunables of the adaptive prioritization engine.
type RankingConfig struct {
	// UsageWeight is the multiplier applied to the ln(1+count) usage term.
	// It is read once at startup and treated as immutable for the process
	// lifetime.
	UsageWeight float64 `mapstructure:"usage_weight" validate:"gte=0"`
}

// NotifierConfig selects and configures the caregiver notification transport.
type NotifierConfig struct {
	// Kind selects the notifier implementation.
	Kind string `mapstructure:"kind" validate:"required,oneof=redis webhook"`

	// Timeout bounds every notification dispatch so a caregiver-side outage
	// never stalls the user-facing selection flow.
	Timeout time.Duration `mapstructure:"timeout" validate:"required"`

	RedisURL   string `mapstructure:"redis_url" validate:"required_if=Kind redis"`
	RedisQueue string `mapstructure:"redis_queue" validate:"required_if=Kind redis"`
	WebhookURL string `mapstructure:"webhook_url" validate:"required_if=Kind webhook"`
}
