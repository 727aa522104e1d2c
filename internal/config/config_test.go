package config_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rupaya/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.Gateway.MockMode)
	assert.Empty(t, cfg.Gateway.KeyID)
	assert.True(t, decimal.RequireFromString("1.00").Equal(cfg.Gateway.MinCaptureAmount()))
	assert.True(t, decimal.RequireFromString("18.00").Equal(cfg.Tax.DefaultGSTRate()))
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RUPAYA_GATEWAY_MIN_AMOUNT", "5.00")
	t.Setenv("RUPAYA_TAX_DEFAULT_RATE", "12.00")
	t.Setenv("RUPAYA_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("5.00").Equal(cfg.Gateway.MinCaptureAmount()))
	assert.True(t, decimal.RequireFromString("12.00").Equal(cfg.Tax.DefaultGSTRate()))
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestGatewayConfig_MinCaptureAmount_Fallback(t *testing.T) {
	g := config.GatewayConfig{MinAmount: "not-a-number"}
	assert.True(t, decimal.RequireFromString("1.00").Equal(g.MinCaptureAmount()))

	g = config.GatewayConfig{MinAmount: "-5.00"}
	assert.True(t, decimal.RequireFromString("1.00").Equal(g.MinCaptureAmount()))
}

func TestTaxConfig_DefaultGSTRate_Fallback(t *testing.T) {
	tax := config.TaxConfig{DefaultRate: ""}
	assert.True(t, decimal.RequireFromString("18.00").Equal(tax.DefaultGSTRate()))

	tax = config.TaxConfig{DefaultRate: "-1"}
	assert.True(t, decimal.RequireFromString("18.00").Equal(tax.DefaultGSTRate()))
}
