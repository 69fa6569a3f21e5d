package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	BotToken           string         `yaml:"bot_token" envconfig:"BOT_TOKEN"`
	TimeZone           string         `yaml:"timezone" envconfig:"TIMEZONE"`
	ListLimit          int            `yaml:"list_limit" envconfig:"LIST_LIMIT"`
	SessionIdleTimeout time.Duration  `yaml:"session_idle_timeout" envconfig:"SESSION_IDLE_TIMEOUT"`
	LogLevel           string         `yaml:"log_level" envconfig:"LOG_LEVEL"`
	Database           DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL      string `yaml:"url" envconfig:"DATABASE_URL"`
	Host     string `yaml:"host" envconfig:"DB_HOST"`
	Port     string `yaml:"port" envconfig:"DB_PORT"`
	Name     string `yaml:"name" envconfig:"DB_NAME"`
	User     string `yaml:"user" envconfig:"DB_USER"`
	Password string `yaml:"password" envconfig:"DB_PASSWORD"`
	SSLMode  string `yaml:"sslmode" envconfig:"DB_SSLMODE"`
}

const (
	defaultTimeZone  = "Africa/Cairo"
	defaultListLimit = 20
	defaultLogLevel  = "info"
)

// Load reads configuration from an optional YAML file, then from the
// environment (.env included). Environment values win over the file.
func Load(path string) (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize applies defaults and validates required fields
func Normalize(cfg *Config) error {
	if cfg == nil {
		return errors.New("nil config")
	}

	cfg.BotToken = strings.TrimSpace(cfg.BotToken)
	if cfg.BotToken == "" {
		return errors.New("BOT_TOKEN is required")
	}
	if cfg.Database.URL == "" && cfg.Database.Password == "" {
		return errors.New("DATABASE_URL or DB_PASSWORD is required")
	}

	if cfg.TimeZone == "" {
		cfg.TimeZone = defaultTimeZone
	}
	if _, err := time.LoadLocation(cfg.TimeZone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", cfg.TimeZone, err)
	}

	if cfg.ListLimit < 0 {
		return fmt.Errorf("LIST_LIMIT must be >= 0, got %d", cfg.ListLimit)
	}
	if cfg.ListLimit == 0 {
		cfg.ListLimit = defaultListLimit
	}
	if cfg.SessionIdleTimeout < 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must be >= 0, got %s", cfg.SessionIdleTimeout)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	db := &cfg.Database
	db.Host = withDefault(db.Host, "localhost")
	db.Port = withDefault(db.Port, "5432")
	db.Name = withDefault(db.Name, "katiba")
	db.User = withDefault(db.User, "katiba")
	db.SSLMode = withDefault(db.SSLMode, "disable")
	return nil
}

// Location returns the civil time zone orders are dated in
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func withDefault(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}
