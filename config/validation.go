package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// requirement checks one field of a loaded Config.
type requirement struct {
	field string
	get   func(*Config) string
}

var (
	postgresRequirements = []requirement{
		{"DB_HOST", func(c *Config) string { return c.DBHost }},
		{"DB_PORT", func(c *Config) string { return c.DBPort }},
		{"DB_USER", func(c *Config) string { return c.DBUser }},
		{"DB_NAME", func(c *Config) string { return c.DBName }},
	}

	// Environment-specific requirements on top of the driver's own.
	requirements = map[Environment][]requirement{
		Development: nil,
		Test:        nil,
		CI: {
			{"DB_PASSWORD", func(c *Config) string { return c.DBPassword }},
		},
		Production: {
			{"SERVER_PORT", func(c *Config) string { return c.ServerPort }},
			{"DB_PASSWORD", func(c *Config) string { return c.DBPassword }},
		},
	}
)

// ValidateConfig checks if the configuration meets the requirements for its
// environment and reports every problem at once.
func ValidateConfig(cfg *Config) error {
	var errs []string

	switch cfg.DBDriver {
	case DriverPostgres:
		for _, req := range postgresRequirements {
			if req.get(cfg) == "" {
				errs = append(errs, ValidationError{req.field, "is required for the postgres driver"}.Error())
			}
		}
	case DriverSQLite:
		if cfg.Environment == Production {
			errs = append(errs, ValidationError{"DB_DRIVER", "sqlite is not allowed in production"}.Error())
		}
		if cfg.SQLitePath == "" {
			errs = append(errs, ValidationError{"SQLITE_PATH", "is required for the sqlite driver"}.Error())
		}
	default:
		errs = append(errs, ValidationError{"DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver)}.Error())
	}

	for _, req := range requirements[cfg.Environment] {
		if req.get(cfg) == "" {
			errs = append(errs, ValidationError{req.field, fmt.Sprintf("is required in %s", cfg.Environment)}.Error())
		}
	}

	if cfg.RateLimitWrites < 0 {
		errs = append(errs, ValidationError{"RATE_LIMIT_WRITES", "must not be negative"}.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
