package domain

import "fmt"

// SubtotalPolicy decides where line subtotals and the invoice total come from.
type SubtotalPolicy string

const (
	// PolicyComputed derives subtotals and the total from the rate fields.
	// The subtotal and total fields are read-only on every surface.
	PolicyComputed SubtotalPolicy = "computed"
	// PolicyAuthored shows the subtotal and total exactly as typed.
	PolicyAuthored SubtotalPolicy = "authored"
)

// ValidSubtotalPolicies enumerates all recognized policies.
var ValidSubtotalPolicies = []SubtotalPolicy{PolicyComputed, PolicyAuthored}

// Business is the static identity printed in the document header and footer.
type Business struct {
	Name      string `yaml:"name"      json:"name"`
	Address   string `yaml:"address"   json:"address"`
	Signatory string `yaml:"signatory" json:"signatory,omitempty"`
}

// ProjectConfig holds configuration loaded from .tripinvoice.yaml.
type ProjectConfig struct {
	SubtotalPolicy     SubtotalPolicy `yaml:"subtotal_policy"      json:"subtotal_policy"`
	Business           Business       `yaml:"business"             json:"business"`
	CurrencySymbol     string         `yaml:"currency_symbol"      json:"currency_symbol"`
	PaymentModes       []string       `yaml:"payment_modes"        json:"payment_modes"`
	DefaultPaymentMode string         `yaml:"default_payment_mode" json:"default_payment_mode"`
	// CompactWidth is the terminal width, in columns, below which the wizard
	// surface is chosen over the editor.
	CompactWidth int    `yaml:"compact_width" json:"compact_width"`
	ExportDir    string `yaml:"export_dir"    json:"export_dir,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		SubtotalPolicy: PolicyComputed,
		Business: Business{
			Name:      "ADITYA TOURS & TRAVELS",
			Address:   "B-202, Radha Palace, Diwanman, Vasai West, Palghar, 401202",
			Signatory: "Ganesh Rasal",
		},
		CurrencySymbol:     "₹",
		PaymentModes:       []string{"Cash", "Check", "Credit", "UPI"},
		DefaultPaymentMode: "Cash",
		CompactWidth:       100,
		ExportDir:          ".",
	}
}

// Computed reports whether subtotals and the total are derived.
func (c ProjectConfig) Computed() bool {
	return c.SubtotalPolicy == PolicyComputed
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	// 1. subtotal_policy must be known or empty
	if c.SubtotalPolicy != "" {
		valid := false
		for _, p := range ValidSubtotalPolicies {
			if c.SubtotalPolicy == p {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown subtotal_policy %q (valid: computed, authored)", c.SubtotalPolicy)
		}
	}

	// 2. payment modes must not contain blanks or duplicates
	seen := make(map[string]bool, len(c.PaymentModes))
	for i, m := range c.PaymentModes {
		if m == "" {
			return fmt.Errorf("payment_modes[%d] must not be empty", i)
		}
		if seen[m] {
			return fmt.Errorf("duplicate payment mode %q in payment_modes", m)
		}
		seen[m] = true
	}

	// 3. default payment mode must be one of the listed modes
	if c.DefaultPaymentMode != "" && len(c.PaymentModes) > 0 && !seen[c.DefaultPaymentMode] {
		return fmt.Errorf("default_payment_mode %q is not listed in payment_modes", c.DefaultPaymentMode)
	}

	// 4. compact width must be positive if set
	if c.CompactWidth < 0 {
		return fmt.Errorf("compact_width must be > 0 (got %d)", c.CompactWidth)
	}

	return nil
}
