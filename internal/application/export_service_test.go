package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripinvoice/tripinvoice/internal/application"
	"github.com/tripinvoice/tripinvoice/internal/domain"
)

func TestExportService_UsesSnapshotAndTitle(t *testing.T) {
	n := &recorder{}
	store := newStore(n)
	exp := &fakeExporter{}
	svc := application.NewExportService(store, domain.DefaultConfig(), exp, n, nil)

	require.NoError(t, svc.Export("done", nil))
	store.SetField(domain.FieldInvoiceNumber, "A-17")
	require.NoError(t, svc.Export("done", nil))

	assert.Equal(t, []string{"Invoice_Draft", "Invoice_A-17"}, exp.titles)
	assert.Equal(t, "A-17", exp.views[1].InvoiceDetails[0].Value)
	assert.Equal(t, "", exp.views[0].InvoiceDetails[0].Value, "earlier export kept its snapshot")
}

func TestExportService_CompletionOrder(t *testing.T) {
	n := &recorder{}
	store := newStore(n)
	svc := application.NewExportService(store, domain.DefaultConfig(), &fakeExporter{}, n, nil)

	require.NoError(t, svc.Export("Invoice saved as PDF!", func() { n.events = append(n.events, event{kind: "complete"}) }))
	assert.Equal(t, []string{"success", "complete"}, n.kinds())
}

func TestExportService_Failure(t *testing.T) {
	n := &recorder{}
	store := newStore(n)
	svc := application.NewExportService(store, domain.DefaultConfig(), &fakeExporter{err: errDiskFull}, n, nil)

	called := false
	err := svc.Export("done", func() { called = true })

	require.Error(t, err)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Contains(t, err.Error(), "exporting Invoice_Draft")
	assert.False(t, called)
	require.Len(t, n.events, 1)
	assert.Equal(t, "warning", n.events[0].kind)
}

func TestSession_ExportWithoutExporter(t *testing.T) {
	s := application.NewSession(domain.DefaultConfig(), application.SessionDeps{
		Clock: fixedClock{},
		IDs:   &seqIDs{},
	}, application.SurfaceEditor)

	assert.Error(t, s.Export("", nil))
	assert.False(t, s.Editor().PrintButton(nil).Enabled)
}
