package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL      string
	EnableDBCheck    bool
	LogLevel         string
	LogFormat        string
	DBMaxConns       int32
	DBConnectTimeout time.Duration
	MigrateOnStart   bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Environment variables win over .env values, which win over the defaults below.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("DB_MAX_CONNS", 4)
	v.SetDefault("DB_CONNECT_TIMEOUT", "5s")
	v.SetDefault("MIGRATE_ON_START", false)
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFormat:      v.GetString("LOG_FORMAT"),
		DBMaxConns:     v.GetInt32("DB_MAX_CONNS"),
		MigrateOnStart: v.GetBool("MIGRATE_ON_START"),
	}
	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}

	timeoutStr := v.GetString("DB_CONNECT_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 5 * time.Second
		slog.Warn("Invalid value for DB_CONNECT_TIMEOUT, using default",
			slog.String("value", timeoutStr), slog.Duration("default", timeout))
	}
	cfg.DBConnectTimeout = timeout

	return cfg, nil
}
