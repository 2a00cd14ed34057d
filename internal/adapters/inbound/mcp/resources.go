package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/tui"
)

// registerResources registers the invoice MCP resources on the given server.
func registerResources(s *server.MCPServer, deps Deps) {
	// 1. invoice://current - the record being edited
	s.AddResource(
		mcplib.NewResource(
			"invoice://current",
			"Current Invoice",
			mcplib.WithResourceDescription("The invoice record being edited"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCurrentResource(deps),
	)

	// 2. invoice://preview - rendered document
	s.AddResource(
		mcplib.NewResource(
			"invoice://preview",
			"Invoice Preview",
			mcplib.WithResourceDescription("The invoice rendered as a printable text document"),
			mcplib.WithMIMEType("text/plain"),
		),
		handlePreviewResource(deps),
	)
}

func handleCurrentResource(deps Deps) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(deps.Session.Store().Snapshot(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling invoice: %w", err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "invoice://current",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handlePreviewResource(deps Deps) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "invoice://preview",
				MIMEType: "text/plain",
				Text:     tui.RenderDocument(deps.Session.Document(), 0),
			},
		}, nil
	}
}
