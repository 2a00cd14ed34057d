package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/config"
	"github.com/tripinvoice/tripinvoice/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		policy string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a " + config.FileName + " configuration file",
		Long:  "Create a " + config.FileName + " with the default business details, payment modes and subtotal policy.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			cfg := domain.DefaultConfig()
			cfg.SubtotalPolicy = domain.SubtotalPolicy(policy)
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := os.WriteFile(dest, []byte(generateConfig(cfg)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&policy, "policy", string(domain.PolicyComputed), "Subtotal policy (computed, authored)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing "+config.FileName)

	return cmd
}

func generateConfig(cfg domain.ProjectConfig) string {
	var b strings.Builder

	b.WriteString("# tripinvoice configuration\n\n")
	b.WriteString("# computed: subtotals and the total are derived from the rates and read-only.\n")
	b.WriteString("# authored: subtotals and the total are printed exactly as typed.\n")
	fmt.Fprintf(&b, "subtotal_policy: %s\n\n", cfg.SubtotalPolicy)

	b.WriteString("business:\n")
	fmt.Fprintf(&b, "  name: %q\n", cfg.Business.Name)
	fmt.Fprintf(&b, "  address: %q\n", cfg.Business.Address)
	fmt.Fprintf(&b, "  signatory: %q\n\n", cfg.Business.Signatory)

	fmt.Fprintf(&b, "currency_symbol: %q\n\n", cfg.CurrencySymbol)

	b.WriteString("payment_modes:\n")
	for _, m := range cfg.PaymentModes {
		fmt.Fprintf(&b, "  - %s\n", m)
	}
	fmt.Fprintf(&b, "default_payment_mode: %s\n\n", cfg.DefaultPaymentMode)

	b.WriteString("# Terminals narrower than this many columns get the step-by-step wizard.\n")
	fmt.Fprintf(&b, "compact_width: %d\n\n", cfg.CompactWidth)

	b.WriteString("# Exported documents are written here.\n")
	fmt.Fprintf(&b, "export_dir: %s\n", cfg.ExportDir)

	return b.String()
}
