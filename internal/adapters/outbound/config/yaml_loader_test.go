package config_test

import (
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/tripinvoice/tripinvoice/internal/adapters/outbound/config"
	"github.com/tripinvoice/tripinvoice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tripinvoice.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
subtotal_policy: authored
business:
  name: SHREE CABS
currency_symbol: "Rs."
compact_width: 80
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyAuthored, cfg.SubtotalPolicy)
	assert.Equal(t, "SHREE CABS", cfg.Business.Name)
	assert.Equal(t, "Rs.", cfg.CurrencySymbol)
	assert.Equal(t, 80, cfg.CompactWidth)
}

func TestYAMLLoader_UnsetValuesKeepDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `business: {name: SHREE CABS}`)

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)

	def := domain.DefaultConfig()
	assert.Equal(t, def.Business.Address, cfg.Business.Address)
	assert.Equal(t, def.SubtotalPolicy, cfg.SubtotalPolicy)
	assert.Equal(t, def.PaymentModes, cfg.PaymentModes)
	assert.Equal(t, "Cash", cfg.DefaultPaymentMode)
	assert.Equal(t, ".", cfg.ExportDir)
}

func TestYAMLLoader_PaymentModesReplaceDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
payment_modes: [UPI, Card]
`)

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"UPI", "Card"}, cfg.PaymentModes)
	assert.Equal(t, "UPI", cfg.DefaultPaymentMode, "first listed mode becomes the default")
}

func TestYAMLLoader_DefaultModeMustBeListed(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `default_payment_mode: Barter`)

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .tripinvoice.yaml")
	assert.Contains(t, err.Error(), "Barter")
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .tripinvoice.yaml")
}

func TestYAMLLoader_UnknownPolicy(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `subtotal_policy: guessed`)

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown subtotal_policy")
}

func TestYAMLLoader_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".tripinvoice.yaml"), 0o755))

	_, err := appconfig.New().Load(dir)
	assert.Error(t, err)
}
