package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/piresc/taximeter/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	cfg := loadConfigFromEnv()

	assert.Equal(t, "taximeter", cfg.App.Name)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, 0.1, cfg.Pricing.FallbackPricePerKm)
	assert.Equal(t, 0.027, cfg.Pricing.FallbackPricePerSecond)
	assert.Equal(t, models.LocationSourceSimulated, cfg.Location.Source)
	assert.Equal(t, 100, cfg.Location.Points)
	assert.Equal(t, time.Second, cfg.Location.Interval)
	assert.Equal(t, time.Second, cfg.Ride.RefreshInterval)
	assert.Equal(t, 37.7749, cfg.Location.StartLatitude)
	assert.Equal(t, -122.4194, cfg.Location.StartLongitude)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("RIDE_REFRESH_INTERVAL", "250ms")
	t.Setenv("LOCATION_SOURCE", "nats")
	t.Setenv("PRICING_MAX_RETRIES", "5")
	t.Setenv("NSQ_LOOKUPD_ADDRESS", "a:4161, b:4161,")
	t.Setenv("APP_DEBUG", "true")

	cfg := loadConfigFromEnv()

	assert.Equal(t, 250*time.Millisecond, cfg.Ride.RefreshInterval)
	assert.Equal(t, models.LocationSourceNATS, cfg.Location.Source)
	assert.Equal(t, 5, cfg.Pricing.MaxRetries)
	assert.Equal(t, []string{"a:4161", "b:4161"}, cfg.NSQ.LookupdAddress)
	assert.True(t, cfg.App.Debug)
}

func TestGetEnvHelpers_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TEST_INT", "abc")
	t.Setenv("TEST_FLOAT", "x1")
	t.Setenv("TEST_BOOL", "maybe")
	t.Setenv("TEST_DURATION", "-1s")

	assert.Equal(t, 7, GetEnvAsInt("TEST_INT", 7))
	assert.Equal(t, 1.5, GetEnvAsFloat("TEST_FLOAT", 1.5))
	assert.True(t, GetEnvAsBool("TEST_BOOL", true))
	assert.Equal(t, time.Minute, GetEnvAsDuration("TEST_DURATION", time.Minute))
}

func TestInitConfig_LoadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taximeter.env")
	require.NoError(t, os.WriteFile(path, []byte("PRICING_URL=http://pricing.local/config\n"), 0o600))
	t.Setenv("APP_ENV", "local")
	t.Cleanup(func() { os.Unsetenv("PRICING_URL") })

	cfg := InitConfig(path)

	assert.Equal(t, "http://pricing.local/config", cfg.Pricing.URL)
}
