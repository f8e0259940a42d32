package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsTest())
	assert.Equal(t, 3*time.Second, cfg.NotificationTTL)
	assert.Equal(t, 5*time.Second, cfg.FeedDelay)
	assert.True(t, cfg.SimulateFeed)
	// Outside production an absent secret falls back to the dev default.
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("PORT", "9090")
	t.Setenv("NOTIFICATION_TTL_SECONDS", "10")
	t.Setenv("ORDER_FEED_DELAY_SECONDS", "1")
	t.Setenv("SIMULATE_ORDER_FEED", "false")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.NotificationTTL)
	assert.Equal(t, time.Second, cfg.FeedDelay)
	assert.False(t, cfg.SimulateFeed)
}

func TestValidate_ProductionRequiresSecret(t *testing.T) {
	cfg := &Config{
		GoEnv:           "production",
		NotificationTTL: 3 * time.Second,
		FeedDelay:       5 * time.Second,
	}
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "something"
	assert.NoError(t, cfg.Validate())
}

func TestOpenDatabase(t *testing.T) {
	db, err := OpenDatabase()
	assert.NoError(t, err)

	sqlDB, err := db.DB()
	assert.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
	// The pool is pinned to one connection so the in-memory database
	// survives checkouts.
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}
