package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultPort is the port used when PORT is not set.
	DefaultPort = 5000
	// DefaultReadTimeout is the default read timeout for incoming requests.
	DefaultReadTimeout = 15 * time.Second
	// DefaultWriteTimeout is the default write timeout for server responses.
	DefaultWriteTimeout = 15 * time.Second
	// DefaultShutdownTimeout bounds the graceful shutdown of the HTTP server.
	DefaultShutdownTimeout = 10 * time.Second
	// DefaultLogLevel is the logger level used when LOG_LEVEL is not set.
	DefaultLogLevel = "info"
)

// ErrMissingDatabaseURL is returned when no database connection string is configured.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL must be set")

// Config stores configuration values for the application.
// These values can be read from a configuration file or environment variables.
type Config struct {
	// DatabaseURL is the PostgreSQL connection string.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// ServerAddress is the IP address where the server will listen.
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	// ServerPort is the port on which the server will listen.
	ServerPort int `mapstructure:"PORT"`
	// ReadTimeout is the read timeout for incoming requests.
	ReadTimeout time.Duration `mapstructure:"READ_TIMEOUT"`
	// WriteTimeout is the write timeout for server responses.
	WriteTimeout time.Duration `mapstructure:"WRITE_TIMEOUT"`
	// ShutdownTimeout bounds how long in-flight requests may take once shutdown starts.
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	// DBMaxOpenConns limits open pool connections. Zero keeps the driver default.
	DBMaxOpenConns int `mapstructure:"DB_MAX_OPEN_CONNS"`
	// DBMaxIdleConns limits idle pool connections. Zero keeps the driver default.
	DBMaxIdleConns int `mapstructure:"DB_MAX_IDLE_CONNS"`
	// DBConnMaxLifetime is the maximum lifetime of a pooled connection. Zero means unlimited.
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

// Load loads configuration settings from a specified file or environment variables.
// If both a configuration file and environment variables are used, environment variables take precedence.
// An empty filePath reads the environment only.
func Load(filePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SERVER_ADDRESS", "")
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("READ_TIMEOUT", DefaultReadTimeout)
	v.SetDefault("WRITE_TIMEOUT", DefaultWriteTimeout)
	v.SetDefault("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout)
	v.SetDefault("DB_MAX_OPEN_CONNS", 0)
	v.SetDefault("DB_MAX_IDLE_CONNS", 0)
	v.SetDefault("DB_CONN_MAX_LIFETIME", time.Duration(0))
	v.SetDefault("LOG_LEVEL", DefaultLogLevel)

	if filePath != "" {
		v.SetConfigFile(filePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	return config, nil
}
