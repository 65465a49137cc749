package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg := &Config{}
	require.NoError(t, env.Parse(cfg))

	assert.Equal(t, ":4000", cfg.HTTPAddr)
	assert.Equal(t, "usd", cfg.Stripe.Currency)
	assert.Equal(t, 24*time.Hour, cfg.Worker.PendingOrderTTL)
	assert.Equal(t, 10, cfg.Worker.LowStockThreshold)
	assert.Equal(t, 15*time.Minute, cfg.Worker.ScheduleGrace)
	assert.Equal(t, "foodigo-events", cfg.Kafka.Topic)
}

func TestConfig_PrefixedOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "food")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("PENDING_ORDER_TTL", "2h")

	cfg := &Config{}
	require.NoError(t, env.Parse(cfg))

	assert.Equal(t, "6380", cfg.Redis.Port)
	assert.Equal(t, 2*time.Hour, cfg.Worker.PendingOrderTTL)
	assert.Contains(t, cfg.DB.DSN(), "host=db")
	assert.Contains(t, cfg.DB.DSN(), "dbname=food")
}

func TestConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg := &Config{}
	assert.Error(t, env.Parse(cfg))
}
