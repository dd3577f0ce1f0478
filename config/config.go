package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported values for DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis backs the write rate limiter. An empty RedisURL disables it.
	RedisURL        string
	RateLimitWrites int

	// Object storage for recipe images. An empty bucket disables uploads.
	S3BucketName string
	AWSRegion    string

	// SeedRecipes inserts the sample recipes into an empty store on startup.
	SeedRecipes bool
}

// LoadConfig builds a Config from environment variables, Docker secrets and
// per-environment defaults, in that order of precedence.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	if env != Production {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg := &Config{Environment: env}

	switch env {
	case Development, Test:
		loadDefaults(cfg, DriverSQLite)
	case CI, Production:
		loadDefaults(cfg, DriverPostgres)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	var err error
	if cfg.RateLimitWrites, err = intValue("RATE_LIMIT_WRITES", cfg.RateLimitWrites); err != nil {
		return nil, err
	}
	if cfg.SeedRecipes, err = boolValue("SEED_RECIPES", cfg.SeedRecipes); err != nil {
		return nil, err
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func loadDefaults(cfg *Config, driver string) {
	cfg.ServerHost = value("SERVER_HOST", "server_host", "")
	cfg.ServerPort = value("SERVER_PORT", "server_port", "8080")
	cfg.DBDriver = strings.ToLower(value("DB_DRIVER", "db_driver", driver))
	cfg.DBHost = value("DB_HOST", "db_host", "localhost")
	cfg.DBPort = value("DB_PORT", "db_port", "5432")
	cfg.DBUser = value("DB_USER", "db_user", "postgres")
	cfg.DBPassword = value("DB_PASSWORD", "db_password", "")
	cfg.DBName = value("DB_NAME", "db_name", "diethub")
	cfg.DBSSLMode = value("DB_SSL_MODE", "db_ssl_mode", "disable")
	cfg.SQLitePath = value("SQLITE_PATH", "sqlite_path", "diethub.db")
	cfg.RedisURL = value("REDIS_URL", "redis_url", "")
	cfg.RateLimitWrites = 60
	cfg.S3BucketName = value("S3_BUCKET_NAME", "s3_bucket_name", "")
	cfg.AWSRegion = value("AWS_REGION", "aws_region", "")
	cfg.SeedRecipes = true
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// PostgresDSN renders the connection string for the postgres drivers.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// value returns the environment variable if set, then the Docker secret, then def.
func value(envKey, secret, def string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if v := readSecret(secret); v != "" {
		return v
	}
	return def
}

func intValue(envKey string, def int) (int, error) {
	raw := os.Getenv(envKey)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", envKey, err)
	}
	return n, nil
}

func boolValue(envKey string, def bool) (bool, error) {
	raw := os.Getenv(envKey)
	if raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", envKey, err)
	}
	return b, nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	data, err := os.ReadFile(secretPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: failed to read secret %s: %v", name, err)
		}
		return ""
	}
	return strings.TrimSpace(string(data))
}
