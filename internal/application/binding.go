package application

import "github.com/tripinvoice/tripinvoice/internal/domain"

// FieldKind tells a widget how to present a field.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindDate     FieldKind = "date"
	KindNumber   FieldKind = "number"
	KindSelect   FieldKind = "select"
	KindReadOnly FieldKind = "readonly"
)

// FieldBinding is the value+onChange contract between a widget and the store.
// OnChange is nil for read-only fields.
type FieldBinding struct {
	Name        string
	Label       string
	Placeholder string
	Kind        FieldKind
	Options     []string
	Value       string
	OnChange    func(string)
}

func (b FieldBinding) Editable() bool { return b.OnChange != nil }

// ButtonBinding is the click contract of a button.
type ButtonBinding struct {
	Label   string
	Enabled bool
	OnClick func()
}

// Click runs OnClick when the button is enabled.
func (b ButtonBinding) Click() {
	if b.Enabled && b.OnClick != nil {
		b.OnClick()
	}
}

// LineItemBindings groups the widgets of one line item.
type LineItemBindings struct {
	ID     string
	Number int
	Fields []FieldBinding
	Remove ButtonBinding
}

// Field returns the binding with the given name.
func (l LineItemBindings) Field(name string) (FieldBinding, bool) {
	return findBinding(l.Fields, name)
}

// Surface is a presentation mode over the store. Surfaces hold no derived
// state: every OnChange forwards its value to the store untransformed.
type Surface interface {
	Name() string
	InvoiceFields() []FieldBinding
	LineItems() []LineItemBindings
	AddLineItem() ButtonBinding
}

// FindField returns the top-level binding with the given name on s.
func FindField(s Surface, name string) (FieldBinding, bool) {
	return findBinding(s.InvoiceFields(), name)
}

func findBinding(bs []FieldBinding, name string) (FieldBinding, bool) {
	for _, b := range bs {
		if b.Name == name {
			return b, true
		}
	}
	return FieldBinding{}, false
}

var placeholders = map[string]string{
	string(domain.FieldInvoiceNumber): "INV-001",
	string(domain.FieldCustomerName):  "Customer Name",
	string(domain.FieldPhone):         "Phone Number",
	string(domain.FieldAddress):       "Customer Address",
	string(domain.FieldDescription):   "e.g., Sedan - Honda City",
	string(domain.FieldRentalPeriod):  "e.g., 3 Days",
}

// binder builds bindings shared by both surfaces.
type binder struct {
	store *InvoiceStore
	cfg   domain.ProjectConfig
}

func (b binder) invoiceField(rec domain.InvoiceRecord, f domain.InvoiceField) FieldBinding {
	fb := FieldBinding{
		Name:        string(f),
		Label:       domain.Label(string(f)),
		Placeholder: placeholders[string(f)],
		Kind:        KindText,
		Value:       rec.Get(f),
		OnChange:    func(v string) { b.store.SetField(f, v) },
	}
	switch f {
	case domain.FieldDate:
		fb.Kind = KindDate
	case domain.FieldTotalAmount:
		fb.Kind = KindNumber
		fb.Placeholder = "0"
		if b.cfg.Computed() {
			fb.Kind = KindReadOnly
			fb.Value = domain.FormatAmount(domain.ComputeGrandTotal(rec.LineItems))
			fb.OnChange = nil
		}
	}
	return fb
}

func (b binder) invoiceFields(rec domain.InvoiceRecord, fields []domain.InvoiceField) []FieldBinding {
	out := make([]FieldBinding, 0, len(fields))
	for _, f := range fields {
		out = append(out, b.invoiceField(rec, f))
	}
	return out
}

func (b binder) lineItems(rec domain.InvoiceRecord) []LineItemBindings {
	out := make([]LineItemBindings, 0, len(rec.LineItems))
	for i, item := range rec.LineItems {
		id := item.ID
		lb := LineItemBindings{
			ID:     id,
			Number: i + 1,
			Remove: ButtonBinding{
				Label:   "Remove",
				Enabled: true,
				// a rejected removal is reported to the user by the store
				OnClick: func() { _ = b.store.RemoveLineItem(id) },
			},
		}
		for _, f := range domain.LineItemFields {
			lb.Fields = append(lb.Fields, b.lineItemField(item, f))
		}
		out = append(out, lb)
	}
	return out
}

func (b binder) lineItemField(item domain.LineItem, f domain.LineItemField) FieldBinding {
	id := item.ID
	fb := FieldBinding{
		Name:        string(f),
		Label:       domain.Label(string(f)),
		Placeholder: placeholders[string(f)],
		Kind:        KindText,
		Value:       item.Get(f),
		OnChange:    func(v string) { b.store.UpdateLineItem(id, f, v) },
	}
	if f == domain.FieldDescription || f == domain.FieldRentalPeriod {
		return fb
	}
	fb.Kind = KindNumber
	fb.Placeholder = "0"
	if f == domain.FieldSubtotal && b.cfg.Computed() {
		fb.Kind = KindReadOnly
		fb.Value = domain.FormatAmount(domain.ComputeSubtotal(item))
		fb.OnChange = nil
	}
	return fb
}

func (b binder) addButton() ButtonBinding {
	return ButtonBinding{
		Label:   "Add Vehicle",
		Enabled: true,
		OnClick: func() { b.store.AddLineItem() },
	}
}
