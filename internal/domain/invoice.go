package domain

import "strings"

// DateLayout is the layout used for the pre-filled invoice date.
const DateLayout = "2006-01-02"

// LineItem is one rental line on an invoice. Every field except ID holds
// exactly what the user typed; the empty string means unset.
type LineItem struct {
	ID              string `json:"id"`
	Description     string `json:"description"`
	RentalPeriod    string `json:"rental_period"`
	RatePerDay      string `json:"rate_per_day"`
	TotalDistance   string `json:"total_distance"`
	RatePerDistance string `json:"rate_per_distance"`
	ExtraCharges    string `json:"extra_charges"`
	Subtotal        string `json:"subtotal"`
}

// Get returns the value of the named field.
func (li LineItem) Get(f LineItemField) string {
	switch f {
	case FieldDescription:
		return li.Description
	case FieldRentalPeriod:
		return li.RentalPeriod
	case FieldRatePerDay:
		return li.RatePerDay
	case FieldTotalDistance:
		return li.TotalDistance
	case FieldRatePerDistance:
		return li.RatePerDistance
	case FieldExtraCharges:
		return li.ExtraCharges
	case FieldSubtotal:
		return li.Subtotal
	}
	return ""
}

// With returns a copy of li with the named field replaced. Unknown fields
// return li unchanged and ok=false.
func (li LineItem) With(f LineItemField, value string) (LineItem, bool) {
	switch f {
	case FieldDescription:
		li.Description = value
	case FieldRentalPeriod:
		li.RentalPeriod = value
	case FieldRatePerDay:
		li.RatePerDay = value
	case FieldTotalDistance:
		li.TotalDistance = value
	case FieldRatePerDistance:
		li.RatePerDistance = value
	case FieldExtraCharges:
		li.ExtraCharges = value
	case FieldSubtotal:
		li.Subtotal = value
	default:
		return li, false
	}
	return li, true
}

// InvoiceRecord is the full editable state of one invoice.
type InvoiceRecord struct {
	InvoiceNumber string     `json:"invoice_number"`
	Date          string     `json:"date"`
	CustomerName  string     `json:"customer_name"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	PaymentMode   string     `json:"payment_mode"`
	LineItems     []LineItem `json:"line_items"`
	TotalAmount   string     `json:"total_amount"`
}

// NewInvoiceRecord builds the initial record of a session: one empty line
// item, today's date and the configured default payment mode.
func NewInvoiceRecord(clock Clock, ids IDGenerator, cfg ProjectConfig) InvoiceRecord {
	return InvoiceRecord{
		Date:        clock.Now().Format(DateLayout),
		PaymentMode: cfg.DefaultPaymentMode,
		LineItems:   []LineItem{{ID: ids.NewID()}},
	}
}

// Get returns the value of the named top-level field.
func (r InvoiceRecord) Get(f InvoiceField) string {
	switch f {
	case FieldInvoiceNumber:
		return r.InvoiceNumber
	case FieldDate:
		return r.Date
	case FieldCustomerName:
		return r.CustomerName
	case FieldPhone:
		return r.Phone
	case FieldAddress:
		return r.Address
	case FieldPaymentMode:
		return r.PaymentMode
	case FieldTotalAmount:
		return r.TotalAmount
	}
	return ""
}

// With returns a copy of r with the named field replaced. The line item
// slice is shared with r; callers must not mutate it in place.
func (r InvoiceRecord) With(f InvoiceField, value string) (InvoiceRecord, bool) {
	switch f {
	case FieldInvoiceNumber:
		r.InvoiceNumber = value
	case FieldDate:
		r.Date = value
	case FieldCustomerName:
		r.CustomerName = value
	case FieldPhone:
		r.Phone = value
	case FieldAddress:
		r.Address = value
	case FieldPaymentMode:
		r.PaymentMode = value
	case FieldTotalAmount:
		r.TotalAmount = value
	default:
		return r, false
	}
	return r, true
}

// IndexOf returns the position of the line item with the given id, or -1.
func (r InvoiceRecord) IndexOf(id string) int {
	for i, li := range r.LineItems {
		if li.ID == id {
			return i
		}
	}
	return -1
}

// DocumentFileName turns a document title into a single path element. Runes
// outside [A-Za-z0-9._-], path separators included, become '_'.
func DocumentFileName(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	name := b.String()
	if name == "" || strings.Trim(name, ".") == "" {
		return "Invoice_Draft"
	}
	return name
}

// DocumentTitle is the title handed to the exporter.
func (r InvoiceRecord) DocumentTitle() string {
	if r.InvoiceNumber == "" {
		return "Invoice_Draft"
	}
	return "Invoice_" + r.InvoiceNumber
}
