package application

import "github.com/tripinvoice/tripinvoice/internal/domain"

const (
	msgPrinted    = "Invoice printed successfully!"
	msgReadyToPDF = "Invoice ready to save as PDF!"
)

// Section is a titled group of fields.
type Section struct {
	Title  string
	Fields []FieldBinding
}

// EditorSurface is the wide layout: every field is editable at once next to
// a live preview.
type EditorSurface struct {
	binder
	exports *ExportService
}

func NewEditorSurface(store *InvoiceStore, cfg domain.ProjectConfig, exports *ExportService) *EditorSurface {
	return &EditorSurface{binder: binder{store: store, cfg: cfg}, exports: exports}
}

func (e *EditorSurface) Name() string { return "editor" }

func (e *EditorSurface) InvoiceFields() []FieldBinding {
	return e.fields(e.store.Snapshot(), domain.InvoiceFields)
}

// Sections returns the field groups in display order. Line items are shown
// between the customer section and the total section.
func (e *EditorSurface) Sections() []Section {
	rec := e.store.Snapshot()
	return []Section{
		{Title: "Invoice Details", Fields: e.fields(rec, domain.StepInvoice.Fields())},
		{Title: "Customer Details", Fields: e.fields(rec, domain.StepCustomer.Fields())},
		{Title: "Total", Fields: e.fields(rec, domain.StepVehicles.Fields())},
	}
}

// fields builds bindings for the wide layout, where the payment mode is a
// select over the configured modes.
func (e *EditorSurface) fields(rec domain.InvoiceRecord, fields []domain.InvoiceField) []FieldBinding {
	out := e.invoiceFields(rec, fields)
	for i := range out {
		if out[i].Name == string(domain.FieldPaymentMode) {
			out[i].Kind = KindSelect
			out[i].Options = e.cfg.PaymentModes
			out[i].Placeholder = "Select payment mode"
		}
	}
	return out
}

func (e *EditorSurface) LineItems() []LineItemBindings {
	return e.lineItems(e.store.Snapshot())
}

func (e *EditorSurface) AddLineItem() ButtonBinding { return e.addButton() }

// Document returns the live preview.
func (e *EditorSurface) Document() domain.DocumentView {
	return RenderDocument(e.store.Snapshot(), e.cfg)
}

// PrintButton exports the current document.
func (e *EditorSurface) PrintButton(onComplete func()) ButtonBinding {
	return ButtonBinding{
		Label:   "Print",
		Enabled: e.exports != nil,
		OnClick: func() { _ = e.exports.Export(msgPrinted, onComplete) },
	}
}

// SavePDFButton exports the current document and tells the user the PDF is
// on its way.
func (e *EditorSurface) SavePDFButton(onComplete func()) ButtonBinding {
	return ButtonBinding{
		Label:   "Save PDF",
		Enabled: e.exports != nil,
		OnClick: func() {
			if err := e.exports.Export(msgPrinted, onComplete); err == nil {
				e.exports.notifySuccess(msgReadyToPDF)
			}
		},
	}
}
