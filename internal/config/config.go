package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port       string `yaml:"port" env:"SERVER_PORT"`
		Mode       string `yaml:"mode" env:"SERVER_MODE"`
		StaticPath string `yaml:"static_path" env:"SERVER_STATIC_PATH"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path" env:"DB_PATH"`
	} `yaml:"database"`

	Session struct {
		Secret       string `yaml:"secret" env:"SESSION_SECRET"`
		Lifetime     string `yaml:"lifetime" env:"SESSION_LIFETIME"`
		CookieName   string `yaml:"cookie_name" env:"SESSION_COOKIE_NAME"`
		CookieSecure bool   `yaml:"cookie_secure" env:"SESSION_COOKIE_SECURE"`
	} `yaml:"session"`

	Admin struct {
		Name      string `yaml:"name" env:"ADMIN_NAME"`
		Email     string `yaml:"email" env:"ADMIN_EMAIL"`
		StudentID string `yaml:"student_id" env:"ADMIN_STUDENT_ID"`
		Password  string `yaml:"password" env:"ADMIN_PASSWORD"`
	} `yaml:"admin"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; defaults plus env carry a bare deployment
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	loadFromEnv(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.StaticPath = "web"

	config.Database.Path = "eventhub.db"

	config.Session.Lifetime = "24h"
	config.Session.CookieName = "eventhub_session"
	config.Session.CookieSecure = false

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) {
	config.Server.Port = GetEnv("SERVER_PORT", config.Server.Port)
	config.Server.Mode = GetEnv("SERVER_MODE", config.Server.Mode)
	config.Server.StaticPath = GetEnv("SERVER_STATIC_PATH", config.Server.StaticPath)

	config.Database.Path = GetEnv("DB_PATH", config.Database.Path)

	config.Session.Secret = GetEnv("SESSION_SECRET", config.Session.Secret)
	config.Session.Lifetime = GetEnv("SESSION_LIFETIME", config.Session.Lifetime)
	config.Session.CookieName = GetEnv("SESSION_COOKIE_NAME", config.Session.CookieName)
	config.Session.CookieSecure = GetEnvAsBool("SESSION_COOKIE_SECURE", config.Session.CookieSecure)

	config.Admin.Name = GetEnv("ADMIN_NAME", config.Admin.Name)
	config.Admin.Email = GetEnv("ADMIN_EMAIL", config.Admin.Email)
	config.Admin.StudentID = GetEnv("ADMIN_STUDENT_ID", config.Admin.StudentID)
	config.Admin.Password = GetEnv("ADMIN_PASSWORD", config.Admin.Password)

	config.Logging.Level = GetEnv("LOG_LEVEL", config.Logging.Level)
	config.Logging.Format = GetEnv("LOG_FORMAT", config.Logging.Format)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	if config.Session.Secret == "" {
		return fmt.Errorf("session secret is required")
	}

	if _, err := time.ParseDuration(config.Session.Lifetime); err != nil {
		return fmt.Errorf("invalid session lifetime format: %w", err)
	}

	return nil
}

// SessionLifetime returns the parsed session lifetime
func (c *Config) SessionLifetime() time.Duration {
	d, err := time.ParseDuration(c.Session.Lifetime)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsBool gets an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	valueLower := strings.ToLower(valueStr)
	if valueLower == "true" || valueLower == "1" || valueLower == "yes" {
		return true
	}
	if valueLower == "false" || valueLower == "0" || valueLower == "no" {
		return false
	}

	return defaultValue
}
