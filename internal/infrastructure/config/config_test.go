package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 9093, cfg.GRPCPort)
	assert.Equal(t, 8093, cfg.HTTPPort)
	assert.Equal(t, "laxmi_finance", cfg.DB.Name)
	assert.Equal(t, "finance-events", cfg.Kafka.Topic)
	assert.Equal(t, 15*time.Minute, cfg.Redis.QuoteTTL)
	assert.Equal(t, "finance-engine", cfg.ServiceName)
}

func TestValidateRequiresDBPassword(t *testing.T) {
	cfg := Load()
	cfg.DB.Password = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")

	cfg.DB.Password = "s3cret"
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GRPC_PORT", "19093")
	t.Setenv("QUOTE_CACHE_TTL", "5m")

	cfg := Load()
	assert.Equal(t, 19093, cfg.GRPCPort)
	assert.Equal(t, 5*time.Minute, cfg.Redis.QuoteTTL)
}
