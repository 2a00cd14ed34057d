package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/history"
	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/tui"
	"github.com/tripinvoice/tripinvoice/internal/domain"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List exported invoices",
		Long:  "List the documents exported to export_dir, oldest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			entries, err := history.New().Load(cfg.ExportDir)
			if err != nil {
				return fmt.Errorf("loading export history: %w", err)
			}

			if jsonOutput {
				if entries == nil {
					entries = []domain.ExportEntry{}
				}
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling history: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderExportHistory(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
