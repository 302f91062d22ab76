package dbconfig

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds Postgres connection settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	// Pool sizing applies to pgxpool consumers only; see PoolDSN.
	PoolMaxConns int
	PoolMinConns int
}

// NewConfigFromEnv reads DB_* environment variables (with defaults).
func NewConfigFromEnv() Config {
	return Config{
		Host:         getEnv("DB_HOST", "localhost"),
		Port:         getEnvInt("DB_PORT", 5432),
		User:         getEnv("DB_USER", "postgres"),
		Password:     getEnv("DB_PASSWORD", "postgres"),
		Database:     getEnv("DB_NAME", "pick6"),
		SSLMode:      getEnv("DB_SSLMODE", "disable"),
		PoolMaxConns: getEnvInt("DB_POOL_MAX_CONNS", 8),
		PoolMinConns: getEnvInt("DB_POOL_MIN_CONNS", 0),
	}
}

// DSN returns the plain Postgres connection URL. Migrations and other
// database/sql consumers need this form; the server rejects pool parameters.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode,
	)
}

// PoolDSN returns the connection URL with pgxpool sizing parameters.
func (c Config) PoolDSN() string {
	return fmt.Sprintf("%s&pool_max_conns=%d&pool_min_conns=%d",
		c.DSN(), c.PoolMaxConns, c.PoolMinConns)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
