package config

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

func TestDecodeDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := decode(v)
	if err != nil {
		t.Fatalf("decode defaults failed: %v", err)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("driver want sqlite got %s", cfg.Database.Driver)
	}
	if cfg.Security.PasswordPolicy.MinLength != 6 {
		t.Fatalf("password min length want 6 got %d", cfg.Security.PasswordPolicy.MinLength)
	}
	rules, err := cfg.Pricing.Rules()
	if err != nil {
		t.Fatalf("pricing rules failed: %v", err)
	}
	if !rules.FreeShippingThreshold.Equal(decimal.RequireFromString("50")) {
		t.Fatalf("threshold want 50 got %s", rules.FreeShippingThreshold)
	}
	if !rules.ShippingFee.Equal(decimal.RequireFromString("5.99")) {
		t.Fatalf("shipping fee want 5.99 got %s", rules.ShippingFee)
	}
	if !rules.TaxRate.Equal(decimal.RequireFromString("0.07")) {
		t.Fatalf("tax rate want 0.07 got %s", rules.TaxRate)
	}
}

func TestDecodeYAMLOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	raw := `
server:
  port: "9090"
database:
  driver: postgres
  dsn: "host=db user=shop"
pricing:
  tax_rate: "0.2"
catalog:
  refresh_interval_seconds: 60
`
	if err := v.ReadConfig(strings.NewReader(raw)); err != nil {
		t.Fatalf("read yaml failed: %v", err)
	}

	cfg, err := decode(v)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("port want 9090 got %s", cfg.Server.Port)
	}
	if cfg.Server.Addr() != "0.0.0.0:9090" {
		t.Fatalf("addr want 0.0.0.0:9090 got %s", cfg.Server.Addr())
	}
	if cfg.Server.ShutdownTimeoutSeconds != 10 || cfg.Server.WriteTimeoutSeconds != 30 {
		t.Fatalf("server timeouts should keep defaults: %+v", cfg.Server)
	}
	if cfg.Database.Driver != "postgres" {
		t.Fatalf("driver want postgres got %s", cfg.Database.Driver)
	}
	if cfg.Catalog.RefreshIntervalSeconds != 60 {
		t.Fatalf("refresh interval want 60 got %d", cfg.Catalog.RefreshIntervalSeconds)
	}
	rules, err := cfg.Pricing.Rules()
	if err != nil {
		t.Fatalf("pricing rules failed: %v", err)
	}
	if !rules.TaxRate.Equal(decimal.RequireFromString("0.2")) {
		t.Fatalf("tax rate want 0.2 got %s", rules.TaxRate)
	}
	if !rules.ShippingFee.Equal(decimal.RequireFromString("5.99")) {
		t.Fatalf("shipping fee should keep default, got %s", rules.ShippingFee)
	}
}

func TestPricingRulesRejectsInvalidValues(t *testing.T) {
	if _, err := (PricingConfig{TaxRate: "seven"}).Rules(); err == nil {
		t.Fatalf("non numeric tax rate should fail")
	}
	if _, err := (PricingConfig{ShippingFee: "-1"}).Rules(); err == nil {
		t.Fatalf("negative shipping fee should fail")
	}
	rules, err := (PricingConfig{}).Rules()
	if err != nil {
		t.Fatalf("empty config should fall back to defaults: %v", err)
	}
	if !rules.FreeShippingThreshold.Equal(decimal.RequireFromString("50.00")) {
		t.Fatalf("threshold want 50 got %s", rules.FreeShippingThreshold)
	}
}
