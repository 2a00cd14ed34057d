package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/htmldoc"
	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/notify"
	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/pdf"
	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/script"
	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/system"
	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/tui"
	"github.com/tripinvoice/tripinvoice/internal/application"
	"github.com/tripinvoice/tripinvoice/internal/domain"
)

var validFormats = map[string]bool{"text": true, "json": true, "html": true, "pdf": true}

// renderOutput is the --format json payload.
type renderOutput struct {
	Record   domain.InvoiceRecord `json:"record"`
	Document domain.DocumentView  `json:"document"`
	Report   *domain.ScriptReport `json:"report"`
}

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		format  string
		surface string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "render <script>",
		Short: "Replay an edit script and render the invoice",
		Long: "Replay a YAML edit script through the editor or wizard surface and render the resulting invoice.\n" +
			"Text and JSON go to stdout unless --out is given. PDF is written to --out, or to export_dir as <title>.pdf.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormats[format] {
				return fmt.Errorf("invalid --format %q: must be one of text, json, html, pdf", format)
			}
			kind := application.SurfaceKind(surface)
			if kind != application.SurfaceEditor && kind != application.SurfaceWizard {
				return fmt.Errorf("invalid --surface %q: must be editor or wizard", surface)
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			log, err := opts.logger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			steps, err := script.New().Load(args[0])
			if err != nil {
				return err
			}

			exportFormat := "pdf"
			if format == "html" {
				exportFormat = "html"
			}
			exporter, err := newExporter(exportFormat, cfg, log)
			if err != nil {
				return err
			}
			session := application.NewSession(cfg, application.SessionDeps{
				Clock:    system.Clock{},
				IDs:      system.UUIDGenerator{},
				Notifier: notify.NewWriter(cmd.ErrOrStderr(), log),
				Exporter: exporter,
				Log:      log,
			}, kind)

			report, err := application.NewScriptService(log).Apply(session.Surface(), steps)
			if err != nil {
				return err
			}
			log.Debug("script applied",
				zap.Int("applied", report.Applied),
				zap.Int("rejected", report.Rejected),
				zap.Int("skipped", len(report.Skipped)))

			if format == "pdf" && out == "" {
				if err := session.Export("Invoice saved as PDF!", nil); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), exporter.Path(session.Store().Snapshot().DocumentTitle()))
				return nil
			}

			render := func(w io.Writer) error { return writeRendered(w, format, session, report) }
			if out == "" {
				return render(cmd.OutOrStdout())
			}

			if dir := filepath.Dir(out); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("creating %s: %w", dir, err)
				}
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := writeAndClose(f, out, render); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json, html, pdf)")
	cmd.Flags().StringVar(&surface, "surface", string(application.SurfaceEditor), "Surface to replay the script through (editor, wizard)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write output to this file")

	return cmd
}

// writeAndClose runs write against wc and closes it. A close error is
// returned; it is where a failed flush surfaces.
func writeAndClose(wc io.WriteCloser, name string, write func(io.Writer) error) error {
	if err := write(wc); err != nil {
		wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}
	return nil
}

func writeRendered(w io.Writer, format string, session *application.Session, report *domain.ScriptReport) error {
	view := session.Document()
	title := session.Store().Snapshot().DocumentTitle()

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(renderOutput{
			Record:   session.Store().Snapshot(),
			Document: view,
			Report:   report,
		})
	case "html":
		page, err := htmldoc.NewRenderer().RenderHTML(view, title)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, page)
		return err
	case "pdf":
		return pdf.NewRenderer().Render(w, view, title)
	default:
		_, err := fmt.Fprintf(w, "%s\n%s", tui.RenderDocument(view, 0), tui.RenderScriptReport(report))
		return err
	}
}
