package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tripinvoice/tripinvoice/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the config directory.
const FileName = ".tripinvoice.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .tripinvoice.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .tripinvoice.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	// Validate before merging to catch typos in the raw input.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	merged := mergeConfig(domain.DefaultConfig(), cfg)
	if err := merged.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return merged, nil
}

// mergeConfig overlays explicit values on top of the defaults.
// Explicit (non-zero) values always win.
func mergeConfig(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := base

	if override.SubtotalPolicy != "" {
		result.SubtotalPolicy = override.SubtotalPolicy
	}
	if override.Business.Name != "" {
		result.Business.Name = override.Business.Name
	}
	if override.Business.Address != "" {
		result.Business.Address = override.Business.Address
	}
	if override.Business.Signatory != "" {
		result.Business.Signatory = override.Business.Signatory
	}
	if override.CurrencySymbol != "" {
		result.CurrencySymbol = override.CurrencySymbol
	}

	// Explicit modes replace the default list. Without an explicit default
	// mode the first listed one is used.
	if len(override.PaymentModes) > 0 {
		result.PaymentModes = override.PaymentModes
		result.DefaultPaymentMode = override.PaymentModes[0]
	}
	if override.DefaultPaymentMode != "" {
		result.DefaultPaymentMode = override.DefaultPaymentMode
	}

	if override.CompactWidth > 0 {
		result.CompactWidth = override.CompactWidth
	}
	if override.ExportDir != "" {
		result.ExportDir = override.ExportDir
	}
	return result
}
