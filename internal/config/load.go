package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config file. Environment variables take precedence over values from the
// config file, and both override the built-in defaults.
//
// Environment variables use the COMMBOARD_ prefix with underscores for
// nesting, e.g. COMMBOARD_SERVER_PORT or COMMBOARD_RANKING_USAGE_WEIGHT.
// The optional config file is config.yaml in the working directory.
//
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// A missing config file is fine; env vars and defaults still apply.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("COMMBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers the built-in defaults for every tunable that has a
// sensible one. Secrets and connection URLs deliberately have no default.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	// Empty defaults register the keys with viper so AutomaticEnv can fill
	// them during Unmarshal; validation rejects them if they stay empty.
	v.SetDefault("database.url", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("notifier.redis_url", "")
	v.SetDefault("notifier.webhook_url", "")
	v.SetDefault("auth.token_lifetime", 24*time.Hour)
	v.SetDefault("ranking.usage_weight", 2.0)
	v.SetDefault("notifier.kind", "redis")
	v.SetDefault("notifier.timeout", 5*time.Second)
	v.SetDefault("notifier.redis_queue", "commboard:notifications")
}
