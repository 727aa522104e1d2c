package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all module configuration.
type Config struct {
	Gateway GatewayConfig
	Tax     TaxConfig
	Log     LogConfig
}

// GatewayConfig holds payment gateway settings. KeyID and KeySecret are only
// consulted when MockMode is off; the mock gateway ignores them.
type GatewayConfig struct {
	KeyID     string `mapstructure:"key_id"`
	KeySecret string `mapstructure:"key_secret"`
	MockMode  bool   `mapstructure:"mock_mode"`
	MinAmount string `mapstructure:"min_amount"`
}

// MinCaptureAmount returns the minimum capturable amount as a decimal,
// falling back to ₹1.00 when the configured value does not parse.
func (g *GatewayConfig) MinCaptureAmount() decimal.Decimal {
	amount, err := decimal.NewFromString(g.MinAmount)
	if err != nil || amount.Sign() <= 0 {
		return decimal.RequireFromString("1.00")
	}
	return amount
}

// TaxConfig holds GST defaults.
type TaxConfig struct {
	DefaultRate string `mapstructure:"default_rate"`
}

// DefaultGSTRate returns the configured default rate, falling back to the
// 18% slab when the value does not parse.
func (t *TaxConfig) DefaultGSTRate() decimal.Decimal {
	rate, err := decimal.NewFromString(t.DefaultRate)
	if err != nil || rate.IsNegative() {
		return decimal.RequireFromString("18.00")
	}
	return rate
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from environment variables with the RUPAYA_
// prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RUPAYA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Gateway defaults
	v.SetDefault("gateway.key_id", "")
	v.SetDefault("gateway.key_secret", "")
	v.SetDefault("gateway.mock_mode", true)
	v.SetDefault("gateway.min_amount", "1.00")

	// Tax defaults
	v.SetDefault("tax.default_rate", "18.00")

	// Log defaults
	v.SetDefault("log.level", "info")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
