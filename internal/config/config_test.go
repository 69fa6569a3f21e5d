package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key Load reads so the host environment cannot leak in
func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"BOT_TOKEN", "TIMEZONE", "LIST_LIMIT", "SESSION_IDLE_TIMEOUT", "LOG_LEVEL",
		"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD", "DB_SSLMODE",
		"CONFIG_PATH",
	}
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestWithDefault(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue string
		expected     string
	}{
		{
			name:         "value set",
			value:        "custom",
			defaultValue: "default",
			expected:     "custom",
		},
		{
			name:         "value empty",
			value:        "",
			defaultValue: "default",
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, withDefault(tt.value, tt.defaultValue))
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
			SSLMode:  "disable",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestConfig_DSN_URLWins(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL:      "postgres://u:p@db:5432/katiba?sslmode=require",
			Host:     "localhost",
			Password: "ignored",
		},
	}

	assert.Equal(t, "postgres://u:p@db:5432/katiba?sslmode=require", cfg.DSN())
}

func TestLoad_MissingBotToken(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := Load("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_MissingDatabaseCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")

	cfg, err := Load("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "Africa/Cairo", cfg.TimeZone)
	assert.Equal(t, 20, cfg.ListLimit)
	assert.Equal(t, time.Duration(0), cfg.SessionIdleTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "katiba", cfg.Database.Name)
	assert.Equal(t, "katiba", cfg.Database.User)
	assert.Equal(t, "disable", cfg.Database.SSLMode)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Africa/Cairo", loc.String())
}

func TestLoad_YAMLFileWithEnvOverride(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
bot_token: file_token
timezone: UTC
list_limit: 10
session_idle_timeout: 30m
database:
  url: postgres://file@db/katiba
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("LIST_LIMIT", "5")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "file_token", cfg.BotToken)
	assert.Equal(t, "UTC", cfg.TimeZone)
	assert.Equal(t, 5, cfg.ListLimit)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTimeout)
	assert.Equal(t, "postgres://file@db/katiba", cfg.DSN())
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestNormalize_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		errMsg string
	}{
		{
			name:   "unknown time zone",
			cfg:    Config{BotToken: "t", TimeZone: "Mars/Olympus", Database: DatabaseConfig{Password: "p"}},
			errMsg: "TIMEZONE",
		},
		{
			name:   "negative list limit",
			cfg:    Config{BotToken: "t", ListLimit: -1, Database: DatabaseConfig{Password: "p"}},
			errMsg: "LIST_LIMIT",
		},
		{
			name:   "negative idle timeout",
			cfg:    Config{BotToken: "t", SessionIdleTimeout: -time.Second, Database: DatabaseConfig{Password: "p"}},
			errMsg: "SESSION_IDLE_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Normalize(&tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	assert.Error(t, Normalize(nil))
}
