package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/tripinvoice/tripinvoice/internal/adapters/inbound/mcp"
	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/notify"
	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/system"
	"github.com/tripinvoice/tripinvoice/internal/application"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the tripinvoice MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *rootOptions) *cobra.Command {
	var export string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start tripinvoice MCP server (stdio)",
		Long:  "Start the tripinvoice MCP server using stdio transport. This lets an AI assistant fill in one invoice through the same editor bindings a person uses, preview it and export it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			log, err := opts.logger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			exporter, err := newExporter(export, cfg, log)
			if err != nil {
				return err
			}

			notices := notify.NewQueue(log)
			session := application.NewSession(cfg, application.SessionDeps{
				Clock:    system.Clock{},
				IDs:      system.UUIDGenerator{},
				Notifier: notices,
				Exporter: exporter,
				Log:      log,
			}, application.SurfaceEditor)

			s := mcpadapter.NewInvoiceMCPServer(mcpadapter.Deps{
				Session:    session,
				Notices:    notices,
				ExportPath: exporter.Path,
				Log:        log,
			})
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&export, "export", "pdf", "Document format for export_pdf (pdf, html)")

	return cmd
}
