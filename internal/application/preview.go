package application

import (
	"strconv"

	"github.com/tripinvoice/tripinvoice/internal/domain"
)

// RenderDocument projects a record onto the printable document. It reads
// rec only.
func RenderDocument(rec domain.InvoiceRecord, cfg domain.ProjectConfig) domain.DocumentView {
	money := func(s string) string {
		if s == "" {
			return domain.Placeholder
		}
		return cfg.CurrencySymbol + s
	}
	orDash := func(s string) string {
		if s == "" {
			return domain.Placeholder
		}
		return s
	}

	view := domain.DocumentView{
		Business: cfg.Business,
		InvoiceDetails: []domain.DetailLine{
			{Label: "Invoice No", Value: rec.InvoiceNumber},
			{Label: "Date", Value: rec.Date},
			{Label: "Payment Mode", Value: rec.PaymentMode},
		},
		CustomerDetails: []domain.DetailLine{
			{Label: "Name", Value: rec.CustomerName},
			{Label: "Phone", Value: rec.Phone},
			{Label: "Address", Value: rec.Address},
		},
		Columns:    domain.DocumentColumns,
		Rows:       make([]domain.DocumentRow, 0, len(rec.LineItems)),
		TotalLabel: "Total Amount",
		Footer: domain.DocumentFooter{
			CustomerSignature: "Customer Signature",
			Signatory:         cfg.Business.Signatory,
			BusinessName:      cfg.Business.Name,
		},
		Policy: cfg.SubtotalPolicy,
	}

	for i, item := range rec.LineItems {
		subtotal := money(item.Subtotal)
		if cfg.Computed() {
			subtotal = cfg.CurrencySymbol + domain.FormatAmount(domain.ComputeSubtotal(item))
		}
		view.Rows = append(view.Rows, domain.DocumentRow{
			ID: item.ID,
			Cells: []string{
				strconv.Itoa(i + 1),
				orDash(item.Description),
				money(item.ExtraCharges),
				orDash(item.RentalPeriod),
				money(item.RatePerDay),
				orDash(item.TotalDistance),
				money(item.RatePerDistance),
				subtotal,
			},
		})
	}

	if cfg.Computed() {
		view.Total = cfg.CurrencySymbol + domain.FormatAmount(domain.ComputeGrandTotal(rec.LineItems))
	} else {
		total := rec.TotalAmount
		if total == "" {
			total = "0"
		}
		view.Total = cfg.CurrencySymbol + total
	}
	return view
}
