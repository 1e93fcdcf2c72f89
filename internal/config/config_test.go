package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  host: localhost
  port: 8080
  env: development
database:
  url: "host=localhost user=food dbname=foodboard"
jwt:
  secret: "s3cret"
  ttl: 24
board:
  post_lifetime_days: 7
  cleanup_interval_minutes: 1
  default_radius_meters: 3000
`)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CONFIG_PATH", path)

	LoadConfig()

	cfg := GetConfig()
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 24, cfg.JWT.TTL)
	assert.Equal(t, 7*24*time.Hour, cfg.PostLifetime())
	assert.Equal(t, time.Minute, cfg.CleanupInterval())
	assert.Equal(t, 3000, cfg.Board.DefaultRadiusMeters)
}

// Молчаливый конфиг получает исторические значения доски объявлений.
func TestLoadConfig_BoardDefaults(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 8080
database:
  url: "host=localhost"
jwt:
  secret: "s3cret"
`)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CONFIG_PATH", path)

	LoadConfig()

	cfg := GetConfig()
	assert.Equal(t, 14, cfg.Board.PostLifetimeDays)
	assert.Equal(t, 5, cfg.Board.CleanupIntervalMinutes)
	assert.Equal(t, 5000, cfg.Board.DefaultRadiusMeters)
	assert.Equal(t, 6, cfg.Board.MaxPhotos)
	assert.Equal(t, 50, cfg.Board.DefaultPageSize)
	assert.Equal(t, 168, cfg.JWT.TTL)
	assert.Equal(t, 14*24*time.Hour, cfg.PostLifetime())
	assert.Equal(t, 5*time.Minute, cfg.CleanupInterval())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "host=db user=food dbname=foodboard")
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_SECRET", "env-secret")

	LoadConfig()

	cfg := GetConfig()
	assert.Equal(t, "host=db user=food dbname=foodboard", cfg.Database.DSN)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 14, cfg.Board.PostLifetimeDays)
}
