// Package config loads and validates all application configuration from
// environment variables and an optional config file.
package config
