package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venue-booking-portal/internal/config"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, "en", cfg.I18n.DefaultLanguage)
	assert.Equal(t, time.Hour, cfg.Cache.StatsCacheTTL)
	assert.Equal(t, 5*time.Minute, cfg.Cache.StatsRefreshInterval)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.False(t, cfg.Redis.Enabled)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Server.AllowOrigins)
}

func TestLoadFile_FromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_PORT=9090\nDEFAULT_LANGUAGE=ar\nREDIS_ENABLED=true\nREDIS_PORT=6380\nSTATS_CACHE_TTL=60\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "ar", cfg.I18n.DefaultLanguage)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6380", cfg.GetRedisAddr())
	assert.Equal(t, time.Minute, cfg.Cache.StatsCacheTTL)
}

func TestLoadFile_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=warn\n"), 0o600))
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFile_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("API_ENV", "production")

	_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	t.Setenv("SESSION_SECRET", "a-real-secret")
	_, err = config.LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
