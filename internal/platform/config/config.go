package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/mailblast/mailblast/internal/pkg/log"
)

// DefaultJWTSecret is the built-in fallback signing secret used when
// JWT_SECRET is unset. Anything but a local setup should override it.
const DefaultJWTSecret = "mailblast-dev-secret-change-me"

// Config represents the process-wide immutable configuration, loaded once
// at startup and injected into services.
type Config struct {
	Server ServerConfig `json:"server"`
	JWT    JWTConfig    `json:"jwt"`
	Mail   MailConfig   `json:"mail"`
	App    AppConfig    `json:"app"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret string `json:"secret"`
}

// MailConfig holds the outbound SMTP relay configuration. Sender
// credentials are supplied per request, never stored here.
type MailConfig struct {
	SMTPHost string        `json:"smtpHost"`
	SMTPPort int           `json:"smtpPort"`
	Timeout  time.Duration `json:"timeout"`
}

// AppConfig holds application-related configuration
type AppConfig struct {
	Name      string `json:"name"`
	Env       string `json:"env"`
	WebDomain string `json:"webDomain"`
}

// LoadFromEnv loads configuration from the environment.
// It follows a clear precedence:
// 1. Explicit environment variables (e.g., set in the shell or by CI)
// 2. Values from the .env file (if it exists)
// 3. Hardcoded defaults
func LoadFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info(".env file not found, using environment variables and defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Host: getEnvOrDefault("HOST", "0.0.0.0"),
			Port: getEnvAsInt("PORT", 3000),
		},
		JWT: JWTConfig{
			Secret: getEnvOrDefault("JWT_SECRET", ""),
		},
		Mail: MailConfig{
			SMTPHost: getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort: getEnvAsInt("SMTP_PORT", 587),
			Timeout:  getEnvAsDuration("MAIL_TIMEOUT", 30*time.Second),
		},
		App: AppConfig{
			Name:      getEnvOrDefault("APP_NAME", "mailblast"),
			Env:       getEnvOrDefault("APP_ENV", "development"),
			WebDomain: getEnvOrDefault("WEB_DOMAIN", "http://localhost:3000"),
		},
	}

	if config.JWT.Secret == "" {
		log.Warn("JWT_SECRET is not set, falling back to the built-in default secret")
		config.JWT.Secret = DefaultJWTSecret
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadFromMap loads configuration from an in-memory map.
// This is the primary helper for testing configuration logic in isolation
// without manipulating global environment variables.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	get := func(key, defaultValue string) string {
		if value, exists := envMap[key]; exists {
			return value
		}
		return defaultValue
	}

	getInt := func(key string, defaultValue int) int {
		if value, exists := envMap[key]; exists {
			if intValue, err := strconv.Atoi(value); err == nil {
				return intValue
			}
		}
		return defaultValue
	}

	getDuration := func(key string, defaultValue time.Duration) time.Duration {
		if value, exists := envMap[key]; exists {
			if duration, err := time.ParseDuration(value); err == nil {
				return duration
			}
		}
		return defaultValue
	}

	config := &Config{
		Server: ServerConfig{
			Host: get("HOST", "0.0.0.0"),
			Port: getInt("PORT", 3000),
		},
		JWT: JWTConfig{
			Secret: get("JWT_SECRET", ""),
		},
		Mail: MailConfig{
			SMTPHost: get("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort: getInt("SMTP_PORT", 587),
			Timeout:  getDuration("MAIL_TIMEOUT", 30*time.Second),
		},
		App: AppConfig{
			Name:      get("APP_NAME", "mailblast"),
			Env:       get("APP_ENV", "development"),
			WebDomain: get("WEB_DOMAIN", "http://localhost:3000"),
		},
	}

	if config.JWT.Secret == "" {
		config.JWT.Secret = DefaultJWTSecret
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration for required fields
func (c *Config) Validate() error {
	var errors []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errors = append(errors, "PORT must be between 1 and 65535")
	}
	if strings.TrimSpace(c.JWT.Secret) == "" {
		errors = append(errors, "JWT_SECRET must not be empty")
	}
	if strings.TrimSpace(c.Mail.SMTPHost) == "" {
		errors = append(errors, "SMTP_HOST must not be empty")
	}
	if c.Mail.Timeout <= 0 {
		errors = append(errors, "MAIL_TIMEOUT must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// Helper functions
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
