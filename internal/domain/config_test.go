package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tripinvoice/tripinvoice/internal/domain"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, domain.PolicyComputed, cfg.SubtotalPolicy)
	assert.Equal(t, "Cash", cfg.DefaultPaymentMode)
	assert.Equal(t, []string{"Cash", "Check", "Credit", "UPI"}, cfg.PaymentModes)
	assert.True(t, cfg.Computed())
}

func TestValidate_UnknownPolicy(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.SubtotalPolicy = "guessed"
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown subtotal_policy")
}

func TestValidate_AuthoredPolicy(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.SubtotalPolicy = domain.PolicyAuthored
	assert.NoError(t, cfg.Validate())
	assert.False(t, cfg.Computed())
}

func TestValidate_EmptyPaymentMode(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.PaymentModes = []string{"Cash", ""}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "payment_modes[1]")
}

func TestValidate_DuplicatePaymentMode(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.PaymentModes = []string{"Cash", "Cash"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate payment mode")
}

func TestValidate_DefaultModeNotListed(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.DefaultPaymentMode = "Barter"
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not listed")
}

func TestValidate_NegativeCompactWidth(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.CompactWidth = -1
	assert.Error(t, cfg.Validate())
}

func TestValidate_ZeroValueConfig(t *testing.T) {
	assert.NoError(t, domain.ProjectConfig{}.Validate())
}
