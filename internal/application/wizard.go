package application

import "github.com/tripinvoice/tripinvoice/internal/domain"

const msgSavedPDF = "Invoice saved as PDF!"

// WizardSurface is the compact layout: the same fields split over four
// sequential steps. The active step is its only state.
type WizardSurface struct {
	binder
	exports *ExportService
	step    domain.WizardStep
}

func NewWizardSurface(store *InvoiceStore, cfg domain.ProjectConfig, exports *ExportService) *WizardSurface {
	return &WizardSurface{
		binder:  binder{store: store, cfg: cfg},
		exports: exports,
		step:    domain.StepInvoice,
	}
}

func (w *WizardSurface) Name() string { return "wizard" }

func (w *WizardSurface) Step() domain.WizardStep { return w.step }

// Next advances one step; a no-op on the last step.
func (w *WizardSurface) Next() { w.step = w.step.Next() }

// Back retreats one step; a no-op on the first step.
func (w *WizardSurface) Back() { w.step = w.step.Back() }

func (w *WizardSurface) CanNext() bool { return !w.step.IsLast() }
func (w *WizardSurface) CanBack() bool { return !w.step.IsFirst() }

// NextButton and BackButton mirror the navigation footer.
func (w *WizardSurface) NextButton() ButtonBinding {
	return ButtonBinding{Label: "Next", Enabled: w.CanNext(), OnClick: w.Next}
}

func (w *WizardSurface) BackButton() ButtonBinding {
	return ButtonBinding{Label: "Back", Enabled: w.CanBack(), OnClick: w.Back}
}

// Title returns the heading of the active step.
func (w *WizardSurface) Title() string { return w.step.Title() }

// Progress returns completion of the active step as a percentage.
func (w *WizardSurface) Progress() int { return w.step.Progress() }

// InvoiceFields returns the bindings of every step, in step order.
func (w *WizardSurface) InvoiceFields() []FieldBinding {
	rec := w.store.Snapshot()
	var out []FieldBinding
	for s := domain.StepInvoice; s <= domain.StepReview; s++ {
		out = append(out, w.stepFields(rec, s)...)
	}
	return out
}

// StepFields returns the top-level bindings shown on the active step.
func (w *WizardSurface) StepFields() []FieldBinding {
	return w.stepFields(w.store.Snapshot(), w.step)
}

func (w *WizardSurface) stepFields(rec domain.InvoiceRecord, s domain.WizardStep) []FieldBinding {
	out := w.invoiceFields(rec, s.Fields())
	for i := range out {
		if out[i].Name == string(domain.FieldPaymentMode) {
			// free text on the compact layout
			out[i].Placeholder = "e.g., Cash, UPI, Check"
		}
	}
	return out
}

// ShowsLineItems reports whether the active step edits line items.
func (w *WizardSurface) ShowsLineItems() bool { return w.step == domain.StepVehicles }

// IsReview reports whether the active step is the final review.
func (w *WizardSurface) IsReview() bool { return w.step == domain.StepReview }

func (w *WizardSurface) LineItems() []LineItemBindings {
	return w.lineItems(w.store.Snapshot())
}

func (w *WizardSurface) AddLineItem() ButtonBinding {
	b := w.addButton()
	b.Label = "Add"
	return b
}

// Document returns the preview shown on the review step.
func (w *WizardSurface) Document() domain.DocumentView {
	return RenderDocument(w.store.Snapshot(), w.cfg)
}

// SavePDFButton exports the current document. It is enabled on the review step.
func (w *WizardSurface) SavePDFButton(onComplete func()) ButtonBinding {
	return ButtonBinding{
		Label:   "Save as PDF",
		Enabled: w.exports != nil && w.IsReview(),
		OnClick: func() { _ = w.exports.Export(msgSavedPDF, onComplete) },
	}
}
