package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, 1000.0, cfg.Pricing.MaxPalletKg)
	assert.Equal(t, 1.1, cfg.Pricing.MarginFactor)
	assert.Equal(t, 1000.0, cfg.Pricing.DefaultGrams)
	assert.Equal(t, "0.025", cfg.Pricing.FuelSurchargeRate)
	assert.Equal(t, "0", cfg.Pricing.FixedFee)
	assert.Equal(t, "0.22", cfg.Pricing.VATRate)
	assert.False(t, cfg.Pricing.DiagnosticsEnabled)

	assert.Empty(t, cfg.Tariffs.SeedFile)
	assert.Equal(t, 1000, cfg.Cache.Size)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "rate_service", cfg.Database.DatabaseName)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)

	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT", "25")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("MAX_PALLET_KG", "800")
	t.Setenv("MARGIN_FACTOR", "1.0")
	t.Setenv("DEFAULT_ITEM_GRAMS", "500")
	t.Setenv("FUEL_SURCHARGE_RATE", "0.03")
	t.Setenv("VAT_RATE", "0.1")
	t.Setenv("DIAGNOSTICS_ENABLED", "true")
	t.Setenv("TARIFFS_FILE", "/etc/tariffs.json")
	t.Setenv("QUOTE_CACHE_SIZE", "50")
	t.Setenv("QUOTE_CACHE_TTL", "1m")
	t.Setenv("MONGODB_ENABLED", "true")
	t.Setenv("MONGODB_DATABASE", "rates_test")
	t.Setenv("CORS_ORIGINS", "https://shop.example.com")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 25, cfg.Server.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
	assert.Equal(t, 800.0, cfg.Pricing.MaxPalletKg)
	assert.Equal(t, 1.0, cfg.Pricing.MarginFactor)
	assert.Equal(t, 500.0, cfg.Pricing.DefaultGrams)
	assert.Equal(t, "0.03", cfg.Pricing.FuelSurchargeRate)
	assert.Equal(t, "0.1", cfg.Pricing.VATRate)
	assert.True(t, cfg.Pricing.DiagnosticsEnabled)
	assert.Equal(t, "/etc/tariffs.json", cfg.Tariffs.SeedFile)
	assert.Equal(t, 50, cfg.Cache.Size)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "rates_test", cfg.Database.DatabaseName)
	assert.Contains(t, cfg.Server.CORSOrigins, "https://shop.example.com")
	assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")
	t.Setenv("RATE_WINDOW", "soon")
	t.Setenv("MAX_PALLET_KG", "heavy")
	t.Setenv("MONGODB_ENABLED", "si")

	cfg := Load()

	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.Equal(t, 1000.0, cfg.Pricing.MaxPalletKg)
	assert.False(t, cfg.Database.Enabled)
}
