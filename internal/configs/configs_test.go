package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_HOST", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("PAGE_SIZE_DEFAULT", "")
	t.Setenv("PAGE_SIZE_MAXIMUM", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.AppURL)
	assert.Equal(t, 100, cfg.PageSizeDefault)
	assert.Equal(t, 500, cfg.PageSizeMaximum)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PAGE_SIZE_DEFAULT", "10")
	t.Setenv("PAGE_SIZE_MAXIMUM", "50")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.PageSizeDefault)
	assert.Equal(t, 50, cfg.PageSizeMaximum)
	assert.Equal(t, "redis:6380", cfg.RedisAddr)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("PAGE_SIZE_DEFAULT", "600")
	t.Setenv("PAGE_SIZE_MAXIMUM", "500")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET must not be empty")
	assert.Contains(t, err.Error(), "PAGE_SIZE_DEFAULT must be between 1 and PAGE_SIZE_MAXIMUM")
}

func TestLoad_NonInteger(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "lots")

	_, err := Load()
	assert.EqualError(t, err, "invalid integer value for RATE_LIMIT_PER_MINUTE")
}

func TestNewDatabaseClient_Migrates(t *testing.T) {
	db, err := NewDatabaseClient(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	assert.True(t, db.Migrator().HasTable("tasks"))
	assert.True(t, db.Migrator().HasTable("timeline_events"))
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("warn", &buf)

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	fallback := NewLogger("nonsense", &buf)
	fallback.Info().Msg("fallback")
	assert.Contains(t, buf.String(), "fallback")
}
