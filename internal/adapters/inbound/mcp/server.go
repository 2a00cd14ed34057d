package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/notify"
	"github.com/tripinvoice/tripinvoice/internal/application"
)

// Deps wires the MCP surface to one invoice session.
type Deps struct {
	Session *application.Session
	// Notices receives the session's notifications; each tool call returns
	// the ones it produced.
	Notices *notify.Queue
	// ExportPath reports where an exported document was written. Optional.
	ExportPath func(title string) string
	Log        *zap.Logger
}

// NewInvoiceMCPServer creates an MCP server exposing one invoice session
// through tools and resources.
func NewInvoiceMCPServer(deps Deps) *server.MCPServer {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	deps.Log = deps.Log.Named("mcp")

	s := server.NewMCPServer(
		"tripinvoice",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, deps)
	registerResources(s, deps)

	return s
}
