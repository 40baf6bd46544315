// Package config provides configuration loading and validation for the
// waiver server. It uses koanf to merge environment variables with optional
// file overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration values for the waiver server.
type Config struct {
	// Server settings
	Port int    `koanf:"port"`
	Env  string `koanf:"env"`

	// Database
	DatabaseURL string `koanf:"database_url"`

	// Resend (staff notification email)
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
	EmailTo      string `koanf:"email_to"` // comma-separated distribution list
}

// Configuration validation errors.
var (
	ErrMissingDatabaseURL  = errors.New("DATABASE_URL is required")
	ErrMissingResendAPIKey = errors.New("RESEND_API_KEY is required")
	ErrMissingEmailFrom    = errors.New("EMAIL_FROM is required")
	ErrMissingEmailTo      = errors.New("EMAIL_TO is required")
	ErrInvalidPort         = errors.New("PORT must be a valid integer")
)

// Default values for non-secret configuration.
const (
	DefaultPort = 8080
	DefaultEnv  = "development"
)

// Load reads configuration from environment variables and an optional YAML
// file. Environment variables take precedence over file values. Returns the
// loaded config and a slice of validation errors (empty if valid).
func Load(configFilePath string) (*Config, []error) {
	k := koanf.New(".")
	var loadErrs []error

	if configFilePath != "" {
		if err := k.Load(file.Provider(configFilePath), yaml.Parser()); err != nil {
			return nil, []error{fmt.Errorf("failed to load config file %s: %w", configFilePath, err)}
		}
	}

	port, portErr := getEnvIntOrDefault("PORT", k.Int("port"), DefaultPort)
	if portErr != nil {
		loadErrs = append(loadErrs, portErr)
	}

	cfg := &Config{
		Port:         port,
		Env:          getEnvOrDefault("ENV", k.String("env"), DefaultEnv),
		DatabaseURL:  getEnvOrKoanf("DATABASE_URL", k, "database_url"),
		ResendAPIKey: getEnvOrKoanf("RESEND_API_KEY", k, "resend_api_key"),
		EmailFrom:    getEnvOrKoanf("EMAIL_FROM", k, "email_from"),
		EmailTo:      getEnvOrKoanf("EMAIL_TO", k, "email_to"),
	}

	errs := cfg.Validate()
	errs = append(loadErrs, errs...)

	return cfg, errs
}

// Validate checks that all required values are present.
func (c *Config) Validate() []error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, ErrMissingDatabaseURL)
	}
	if c.ResendAPIKey == "" {
		errs = append(errs, ErrMissingResendAPIKey)
	}
	if c.EmailFrom == "" {
		errs = append(errs, ErrMissingEmailFrom)
	}
	if len(c.Recipients()) == 0 {
		errs = append(errs, ErrMissingEmailTo)
	}
	return errs
}

// Recipients splits the comma-separated distribution list, trimming
// whitespace and dropping empty entries.
func (c *Config) Recipients() []string {
	var out []string
	for _, addr := range strings.Split(c.EmailTo, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// getEnvOrKoanf returns the environment variable value if set, otherwise the koanf value.
func getEnvOrKoanf(envKey string, k *koanf.Koanf, koanfKey string) string {
	if val := os.Getenv(envKey); val != "" {
		return val
	}
	return k.String(koanfKey)
}

// getEnvOrDefault returns the environment variable value if set, otherwise the koanf value, or default.
func getEnvOrDefault(envKey string, koanfVal string, defaultVal string) string {
	if val := os.Getenv(envKey); val != "" {
		return val
	}
	if koanfVal != "" {
		return koanfVal
	}
	return defaultVal
}

// getEnvIntOrDefault returns the environment variable as int if set, otherwise
// the koanf value, or default. Returns an error if the environment variable is
// set but cannot be parsed as an integer.
func getEnvIntOrDefault(envKey string, koanfVal int, defaultVal int) (int, error) {
	if val := os.Getenv(envKey); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return 0, fmt.Errorf("%s must be a valid integer: %w", envKey, ErrInvalidPort)
		}
		return i, nil
	}
	if koanfVal != 0 {
		return koanfVal, nil
	}
	return defaultVal, nil
}
