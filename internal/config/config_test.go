package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://data.sec.gov", cfg.SEC.BaseURL)
	assert.Equal(t, 10.0, cfg.SEC.RatePerSecond)
	assert.Equal(t, "https://api.polygon.io", cfg.Polygon.BaseURL)
	assert.Equal(t, "1h", cfg.Cache.PriceTTL)
	assert.Equal(t, "24h", cfg.Cache.FilingTTL)
	assert.Equal(t, "24h", cfg.Cache.WrappedTTL)
	assert.Equal(t, "@hourly", cfg.Cache.SweepSchedule)
	assert.Equal(t, "2s", cfg.Refresh.Interval)
	assert.NotEmpty(t, cfg.SEC.UserAgent)
}

func TestLoad_PolygonKeyFromEnv(t *testing.T) {
	t.Setenv("POLYGON_API_KEY", "key-from-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "key-from-env", cfg.Polygon.APIKey)
}

func TestLoad_ProductionRequiresAPIKey(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("POLYGON_API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestDuration(t *testing.T) {
	assert.Equal(t, time.Hour, Duration("1h"))
	assert.Equal(t, 24*time.Hour, Duration("24h"))
}
