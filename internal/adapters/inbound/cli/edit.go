package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	apptui "github.com/tripinvoice/tripinvoice/internal/adapters/inbound/tui"
	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/history"
	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/htmldoc"
	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/notify"
	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/pdf"
	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/system"
	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/viewport"
	"github.com/tripinvoice/tripinvoice/internal/application"
	"github.com/tripinvoice/tripinvoice/internal/domain"
)

func newEditCmd(opts *rootOptions) *cobra.Command {
	var (
		compact bool
		wide    bool
		export  string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Compose an invoice interactively",
		Long: "Open the invoice form in the terminal. Narrow terminals get the step-by-step wizard, wider ones the single-page editor.\n" +
			"Logs are discarded unless --log-file is set, so they do not draw over the form.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if compact && wide {
				return fmt.Errorf("--compact and --wide are mutually exclusive")
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			log := zap.NewNop()
			if opts.logFile != "" {
				if log, err = opts.logger(); err != nil {
					return err
				}
				defer func() { _ = log.Sync() }()
			}

			exporter, err := newExporter(export, cfg, log)
			if err != nil {
				return err
			}

			kind := application.SurfaceAuto
			switch {
			case compact:
				kind = application.SurfaceWizard
			case wide:
				kind = application.SurfaceEditor
			}

			probe := viewport.New(cfg.CompactWidth)
			notices := notify.NewQueue(log)
			session := application.NewSession(cfg, application.SessionDeps{
				Clock:    system.Clock{},
				IDs:      system.UUIDGenerator{},
				Notifier: notices,
				Exporter: exporter,
				Viewport: probe,
				Log:      log,
			}, kind)

			p := tea.NewProgram(apptui.New(session, notices, probe.Width()), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running editor: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "Force the step-by-step wizard")
	cmd.Flags().BoolVar(&wide, "wide", false, "Force the single-page editor")
	cmd.Flags().StringVar(&export, "export", "pdf", "Document format for print and save (pdf, html)")

	return cmd
}

// newExporter picks the document exporter writing to cfg.ExportDir. Every
// export is recorded in the export history.
func newExporter(format string, cfg domain.ProjectConfig, log *zap.Logger) (history.PathExporter, error) {
	var exp history.PathExporter
	switch format {
	case "pdf":
		exp = pdf.NewExporter(cfg.ExportDir, log)
	case "html":
		exp = htmldoc.NewExporter(cfg.ExportDir)
	default:
		return nil, fmt.Errorf("invalid --export %q: must be pdf or html", format)
	}
	return history.NewRecorder(exp, cfg.ExportDir, system.Clock{}, log), nil
}
