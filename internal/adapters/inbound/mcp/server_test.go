package mcp_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/tripinvoice/tripinvoice/internal/adapters/inbound/mcp"
	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/notify"
	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/system"
	"github.com/tripinvoice/tripinvoice/internal/application"
	"github.com/tripinvoice/tripinvoice/internal/domain"
)

type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("row-%d", s.n)
}

type memExporter struct{ titles []string }

func (m *memExporter) PrintDocument(_ domain.DocumentView, title string, onComplete func()) error {
	m.titles = append(m.titles, title)
	onComplete()
	return nil
}

type fixture struct {
	server   *server.MCPServer
	session  *application.Session
	exporter *memExporter
}

func newFixture(t *testing.T, cfg domain.ProjectConfig) *fixture {
	t.Helper()
	queue := notify.NewQueue(nil)
	exp := &memExporter{}
	session := application.NewSession(cfg, application.SessionDeps{
		Clock:    system.Clock{},
		IDs:      &seqIDs{},
		Notifier: queue,
		Exporter: exp,
	}, application.SurfaceEditor)

	s := mcpadapter.NewInvoiceMCPServer(mcpadapter.Deps{
		Session:    session,
		Notices:    queue,
		ExportPath: func(title string) string { return "/tmp/" + title + ".pdf" },
	})
	require.NotNil(t, s)
	return &fixture{server: s, session: session, exporter: exp}
}

func (f *fixture) call(t *testing.T, name string, args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	tool, ok := f.server.ListTools()[name]
	require.True(t, ok, "tool %q should be registered", name)

	var req mcplib.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	return res
}

func text(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestMCPServerHasTools(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	tools := f.server.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"invoice_set_field",
		"invoice_add_line_item",
		"invoice_remove_line_item",
		"invoice_update_line_item",
		"invoice_get",
		"invoice_preview",
		"invoice_export_pdf",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}

func TestTools_EditFlow(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	res := f.call(t, "invoice_set_field", map[string]any{"field": "customerName", "value": "Priya"})
	assert.False(t, res.IsError)

	res = f.call(t, "invoice_add_line_item", nil)
	var added struct {
		ID      string   `json:"id"`
		Notices []string `json:"notices"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &added))
	assert.Equal(t, "row-2", added.ID)
	assert.Equal(t, []string{"Vehicle row added"}, added.Notices)

	res = f.call(t, "invoice_update_line_item", map[string]any{"id": "row-2", "field": "totalKM", "value": "120"})
	assert.False(t, res.IsError)

	rec := f.session.Store().Snapshot()
	assert.Equal(t, "Priya", rec.CustomerName)
	assert.Equal(t, "120", rec.LineItems[1].TotalDistance)

	var got domain.InvoiceRecord
	require.NoError(t, json.Unmarshal([]byte(text(t, f.call(t, "invoice_get", nil))), &got))
	assert.Equal(t, rec, got)
}

func TestTools_ComputedFieldsRejected(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	res := f.call(t, "invoice_set_field", map[string]any{"field": "totalAmount", "value": "5"})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "computed")

	res = f.call(t, "invoice_update_line_item", map[string]any{"id": "row-1", "field": "subtotal", "value": "5"})
	assert.True(t, res.IsError)
}

func TestTools_AuthoredTotalAccepted(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.SubtotalPolicy = domain.PolicyAuthored
	f := newFixture(t, cfg)

	res := f.call(t, "invoice_set_field", map[string]any{"field": "totalAmount", "value": "5"})
	assert.False(t, res.IsError)
	assert.Equal(t, "5", f.session.Store().Snapshot().TotalAmount)
}

func TestTools_RemoveLastRowRejected(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	res := f.call(t, "invoice_remove_line_item", map[string]any{"id": "row-1"})
	assert.True(t, res.IsError)
	assert.Equal(t, "At least one vehicle is required", text(t, res))
	assert.Len(t, f.session.Store().Snapshot().LineItems, 1)

	res = f.call(t, "invoice_remove_line_item", map[string]any{"id": "nope"})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "unknown line item")
}

func TestTools_MissingArgument(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	res := f.call(t, "invoice_set_field", map[string]any{"field": "phone"})
	assert.True(t, res.IsError)
}

func TestTools_Preview(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	f.call(t, "invoice_set_field", map[string]any{"field": "invoiceNumber", "value": "INV-3"})

	assert.Contains(t, text(t, f.call(t, "invoice_preview", nil)), "INV-3")
	assert.Contains(t, text(t, f.call(t, "invoice_preview", map[string]any{"format": "html"})), "<title>Invoice_INV-3</title>")

	var view domain.DocumentView
	require.NoError(t, json.Unmarshal([]byte(text(t, f.call(t, "invoice_preview", map[string]any{"format": "json"}))), &view))
	assert.Equal(t, "₹0.00", view.Total)

	assert.True(t, f.call(t, "invoice_preview", map[string]any{"format": "docx"}).IsError)
}

func TestTools_ExportPDF(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	res := f.call(t, "invoice_export_pdf", nil)
	require.False(t, res.IsError)
	assert.Equal(t, []string{"Invoice_Draft"}, f.exporter.titles)
	assert.Contains(t, text(t, res), "/tmp/Invoice_Draft.pdf")
	assert.Contains(t, text(t, res), "Invoice saved as PDF!")
}

func TestTools_ConcurrentCallsKeepTheirOwnNotices(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	tool := f.server.ListTools()["invoice_add_line_item"]

	const n = 32
	results := make([]*mcplib.CallToolResult, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var req mcplib.CallToolRequest
			req.Params.Name = "invoice_add_line_item"
			results[i], errs[i] = tool.Handler(context.Background(), req)
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		var added struct {
			Notices []string `json:"notices"`
		}
		require.NoError(t, json.Unmarshal([]byte(text(t, results[i])), &added))
		assert.Equal(t, []string{"Vehicle row added"}, added.Notices)
	}
	assert.Len(t, f.session.Store().Snapshot().LineItems, n+1)
}
