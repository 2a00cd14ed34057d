package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripinvoice/tripinvoice/internal/application"
	"github.com/tripinvoice/tripinvoice/internal/domain"
)

func sampleRecord() domain.InvoiceRecord {
	return domain.InvoiceRecord{
		InvoiceNumber: "INV-001",
		Date:          "2026-10-15",
		CustomerName:  "Priya Nair",
		Phone:         "9820012345",
		Address:       "Vasai West",
		PaymentMode:   "UPI",
		LineItems: []domain.LineItem{
			{ID: "a", Description: "Sedan", RentalPeriod: "3 Days", RatePerDay: "100", TotalDistance: "50", RatePerDistance: "2", Subtotal: "999"},
			{ID: "b", ExtraCharges: "250"},
		},
		TotalAmount: "1234",
	}
}

func TestRenderDocument_Computed(t *testing.T) {
	view := application.RenderDocument(sampleRecord(), domain.DefaultConfig())

	assert.Equal(t, "ADITYA TOURS & TRAVELS", view.Business.Name)
	assert.Equal(t, domain.DocumentColumns, view.Columns)
	require.Len(t, view.Rows, 2)
	assert.Equal(t, []string{"1", "Sedan", "-", "3 Days", "₹100", "50", "₹2", "₹400.00"}, view.Rows[0].Cells)
	assert.Equal(t, []string{"2", "-", "₹250", "-", "-", "-", "-", "₹0.00"}, view.Rows[1].Cells)
	assert.Equal(t, "₹400.00", view.Total)
	assert.Equal(t, "Total Amount", view.TotalLabel)
	assert.Equal(t, domain.PolicyComputed, view.Policy)
}

func TestRenderDocument_Authored(t *testing.T) {
	view := application.RenderDocument(sampleRecord(), authoredConfig())

	assert.Equal(t, "₹999", view.Rows[0].Cells[7])
	assert.Equal(t, "-", view.Rows[1].Cells[7])
	assert.Equal(t, "₹1234", view.Total)
}

func TestRenderDocument_AuthoredEmptyTotalShowsZero(t *testing.T) {
	rec := sampleRecord()
	rec.TotalAmount = ""
	view := application.RenderDocument(rec, authoredConfig())
	assert.Equal(t, "₹0", view.Total)
}

func TestRenderDocument_Details(t *testing.T) {
	view := application.RenderDocument(sampleRecord(), domain.DefaultConfig())

	assert.Equal(t, []domain.DetailLine{
		{Label: "Invoice No", Value: "INV-001"},
		{Label: "Date", Value: "2026-10-15"},
		{Label: "Payment Mode", Value: "UPI"},
	}, view.InvoiceDetails)
	assert.Equal(t, "Priya Nair", view.CustomerDetails[0].Value)
	assert.Equal(t, "Customer Signature", view.Footer.CustomerSignature)
	assert.Equal(t, "Ganesh Rasal", view.Footer.Signatory)
}

func TestRenderDocument_DoesNotMutate(t *testing.T) {
	rec := sampleRecord()
	want := sampleRecord()
	application.RenderDocument(rec, domain.DefaultConfig())
	application.RenderDocument(rec, authoredConfig())
	assert.Equal(t, want, rec)
}
