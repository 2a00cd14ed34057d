package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/htmldoc"
	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/tui"
	"github.com/tripinvoice/tripinvoice/internal/application"
	"github.com/tripinvoice/tripinvoice/internal/domain"
)

// editResult is returned by every mutating tool.
type editResult struct {
	ID      string   `json:"id,omitempty"`
	Path    string   `json:"path,omitempty"`
	Notices []string `json:"notices,omitempty"`
}

// registerTools registers all invoice MCP tools on the given server. Tool
// calls are serialized so each result carries only the notices its own
// edit raised.
func registerTools(s *server.MCPServer, deps Deps) {
	calls := &sync.Mutex{}
	// 1. invoice_set_field
	s.AddTool(
		mcplib.NewTool("invoice_set_field",
			mcplib.WithDescription("Set a top-level invoice field (invoiceNumber, date, customerName, phone, address, paymentMode, totalAmount)"),
			mcplib.WithString("field", mcplib.Required(), mcplib.Description("Field name")),
			mcplib.WithString("value", mcplib.Required(), mcplib.Description("New value, stored as typed")),
		),
		serialized(calls, handleSetField(deps)),
	)

	// 2. invoice_add_line_item
	s.AddTool(
		mcplib.NewTool("invoice_add_line_item",
			mcplib.WithDescription("Append an empty vehicle row and return its id"),
		),
		serialized(calls, handleAddLineItem(deps)),
	)

	// 3. invoice_remove_line_item
	s.AddTool(
		mcplib.NewTool("invoice_remove_line_item",
			mcplib.WithDescription("Remove a vehicle row by id. The last remaining row cannot be removed."),
			mcplib.WithString("id", mcplib.Required(), mcplib.Description("Line item id")),
		),
		serialized(calls, handleRemoveLineItem(deps)),
	)

	// 4. invoice_update_line_item
	s.AddTool(
		mcplib.NewTool("invoice_update_line_item",
			mcplib.WithDescription("Set one field of a vehicle row (description, extraCharges, rentalPeriod, ratePerDay, totalKM, ratePerKM, subtotal)"),
			mcplib.WithString("id", mcplib.Required(), mcplib.Description("Line item id")),
			mcplib.WithString("field", mcplib.Required(), mcplib.Description("Line item field name")),
			mcplib.WithString("value", mcplib.Required(), mcplib.Description("New value, stored as typed")),
		),
		serialized(calls, handleUpdateLineItem(deps)),
	)

	// 5. invoice_get
	s.AddTool(
		mcplib.NewTool("invoice_get",
			mcplib.WithDescription("Returns the current invoice record as JSON"),
		),
		serialized(calls, handleGet(deps)),
	)

	// 6. invoice_preview
	s.AddTool(
		mcplib.NewTool("invoice_preview",
			mcplib.WithDescription("Returns the rendered invoice document"),
			mcplib.WithString("format", mcplib.Description("Output format: text, json or html (default: text)")),
		),
		serialized(calls, handlePreview(deps)),
	)

	// 7. invoice_export_pdf
	s.AddTool(
		mcplib.NewTool("invoice_export_pdf",
			mcplib.WithDescription("Export the invoice as Invoice_<number>.pdf"),
		),
		serialized(calls, handleExportPDF(deps)),
	)
}

func handleSetField(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("field")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		value, err := request.RequireString("value")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		f, ok := domain.ParseInvoiceField(name)
		if !ok {
			return errorResult(fmt.Sprintf("unknown invoice field %q", name)), nil
		}
		b, ok := application.FindField(deps.Session.Editor(), string(f))
		if !ok || !b.Editable() {
			return errorResult(fmt.Sprintf("%s is computed and cannot be set", f)), nil
		}
		b.OnChange(value)
		deps.Log.Debug("field set", zap.String("field", string(f)))
		return jsonResult(editResult{Notices: drain(deps)})
	}
}

func handleAddLineItem(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id := deps.Session.Store().AddLineItem()
		return jsonResult(editResult{ID: id, Notices: drain(deps)})
	}
}

func handleRemoveLineItem(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if deps.Session.Store().Snapshot().IndexOf(id) < 0 {
			return errorResult(fmt.Sprintf("unknown line item %q", id)), nil
		}
		if err := deps.Session.Store().RemoveLineItem(id); err != nil {
			notices := drain(deps)
			if errors.Is(err, domain.ErrRejected) && len(notices) > 0 {
				return errorResult(notices[len(notices)-1]), nil
			}
			return errorResult(err.Error()), nil
		}
		return jsonResult(editResult{ID: id, Notices: drain(deps)})
	}
}

func handleUpdateLineItem(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		name, err := request.RequireString("field")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		value, err := request.RequireString("value")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		f, ok := domain.ParseLineItemField(name)
		if !ok {
			return errorResult(fmt.Sprintf("unknown line item field %q", name)), nil
		}
		for _, row := range deps.Session.Editor().LineItems() {
			if row.ID != id {
				continue
			}
			b, ok := row.Field(string(f))
			if !ok || !b.Editable() {
				return errorResult(fmt.Sprintf("%s is computed and cannot be set", f)), nil
			}
			b.OnChange(value)
			return jsonResult(editResult{ID: id, Notices: drain(deps)})
		}
		return errorResult(fmt.Sprintf("unknown line item %q", id)), nil
	}
}

func handleGet(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(deps.Session.Store().Snapshot())
	}
}

func handlePreview(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		format, _ := request.GetArguments()["format"].(string)
		view := deps.Session.Document()

		switch format {
		case "", "text":
			return textResult(tui.RenderDocument(view, 0)), nil
		case "json":
			return jsonResult(view)
		case "html":
			page, err := htmldoc.NewRenderer().RenderHTML(view, deps.Session.Store().Snapshot().DocumentTitle())
			if err != nil {
				return errorResult(err.Error()), nil
			}
			return textResult(page), nil
		default:
			return errorResult(fmt.Sprintf("unknown format %q (valid: text, json, html)", format)), nil
		}
	}
}

func handleExportPDF(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		title := deps.Session.Store().Snapshot().DocumentTitle()
		if err := deps.Session.Export("Invoice saved as PDF!", nil); err != nil {
			drain(deps)
			return errorResult(fmt.Sprintf("export failed: %v", err)), nil
		}
		res := editResult{Notices: drain(deps)}
		if deps.ExportPath != nil {
			res.Path = deps.ExportPath(title)
		}
		return jsonResult(res)
	}
}

// serialized runs h with mu held.
func serialized(mu *sync.Mutex, h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		mu.Lock()
		defer mu.Unlock()
		return h(ctx, request)
	}
}

// drain returns the notifications raised since the last call.
func drain(deps Deps) []string {
	if deps.Notices == nil {
		return nil
	}
	var out []string
	for _, t := range deps.Notices.Drain() {
		out = append(out, t.Message)
	}
	return out
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
