// Package config loads runtime settings for the recados service from
// environment variables and an optional config file using Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Supported storage drivers. Both keep all data in process memory.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config holds runtime settings for the service.
type Config struct {
	AppPort          string
	StorageDriver    string
	DatabaseDSN      string
	BcryptCost       int
	HidePasswordHash bool
	LogLevel         string
	RabbitMQURL      string
	RabbitMQQueue    string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":7878")
	v.SetDefault("STORAGE_DRIVER", StorageMemory)
	v.SetDefault("DATABASE_DSN", "file:recados?mode=memory&cache=shared")
	v.SetDefault("BCRYPT_COST", 8)
	v.SetDefault("HIDE_PASSWORD_HASH", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "recados_events")
}

// Load applies defaults, environment variables and the file named by
// CONFIG_FILE (if any) to v, then validates the result.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := Config{
		AppPort:          v.GetString("APP_PORT"),
		StorageDriver:    strings.ToLower(v.GetString("STORAGE_DRIVER")),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		BcryptCost:       v.GetInt("BCRYPT_COST"),
		HidePasswordHash: v.GetBool("HIDE_PASSWORD_HASH"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		RabbitMQQueue:    v.GetString("RABBITMQ_QUEUE"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.AppPort == "" {
		return fmt.Errorf("APP_PORT must not be empty")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}

	switch c.StorageDriver {
	case StorageMemory:
	case StorageSQLite:
		if !IsInMemoryDSN(c.DatabaseDSN) {
			return fmt.Errorf("DATABASE_DSN %q is not an in-memory SQLite database", c.DatabaseDSN)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.RabbitMQURL != "" && c.RabbitMQQueue == "" {
		return fmt.Errorf("RABBITMQ_QUEUE must be set when RABBITMQ_URL is set")
	}
	return nil
}

// IsInMemoryDSN reports whether dsn points SQLite at a memory database.
func IsInMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
