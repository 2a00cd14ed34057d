package domain

import (
	"strings"

	"github.com/fatih/camelcase"
)

// InvoiceField names a top-level InvoiceRecord field.
type InvoiceField string

const (
	FieldInvoiceNumber InvoiceField = "invoiceNumber"
	FieldDate          InvoiceField = "date"
	FieldCustomerName  InvoiceField = "customerName"
	FieldPhone         InvoiceField = "phone"
	FieldAddress       InvoiceField = "address"
	FieldPaymentMode   InvoiceField = "paymentMode"
	FieldTotalAmount   InvoiceField = "totalAmount"
)

// InvoiceFields enumerates the top-level fields in display order.
var InvoiceFields = []InvoiceField{
	FieldInvoiceNumber, FieldDate,
	FieldCustomerName, FieldPhone, FieldAddress, FieldPaymentMode,
	FieldTotalAmount,
}

// LineItemField names an editable LineItem field.
type LineItemField string

const (
	FieldDescription     LineItemField = "description"
	FieldExtraCharges    LineItemField = "extraCharges"
	FieldRentalPeriod    LineItemField = "rentalPeriod"
	FieldRatePerDay      LineItemField = "ratePerDay"
	FieldTotalDistance   LineItemField = "totalDistance"
	FieldRatePerDistance LineItemField = "ratePerDistance"
	FieldSubtotal        LineItemField = "subtotal"
)

// LineItemFields enumerates the line item fields in display order.
var LineItemFields = []LineItemField{
	FieldDescription, FieldExtraCharges, FieldRentalPeriod,
	FieldRatePerDay, FieldTotalDistance, FieldRatePerDistance,
	FieldSubtotal,
}

// lineItemAliases maps the distance-in-kilometres names onto the canonical ones.
var lineItemAliases = map[string]LineItemField{
	"totalKM":   FieldTotalDistance,
	"ratePerKM": FieldRatePerDistance,
}

// ParseInvoiceField resolves a field name. Matching is case-insensitive.
func ParseInvoiceField(name string) (InvoiceField, bool) {
	for _, f := range InvoiceFields {
		if strings.EqualFold(string(f), name) {
			return f, true
		}
	}
	return "", false
}

// ParseLineItemField resolves a line item field name, accepting the
// kilometre aliases. Matching is case-insensitive.
func ParseLineItemField(name string) (LineItemField, bool) {
	for _, f := range LineItemFields {
		if strings.EqualFold(string(f), name) {
			return f, true
		}
	}
	for alias, f := range lineItemAliases {
		if strings.EqualFold(alias, name) {
			return f, true
		}
	}
	return "", false
}

// fieldLabels overrides labels that do not read well when derived.
var fieldLabels = map[string]string{
	string(FieldInvoiceNumber):   "Invoice Number",
	string(FieldCustomerName):    "Name",
	string(FieldPaymentMode):     "Mode of Payment",
	string(FieldDescription):     "Vehicle Description",
	string(FieldExtraCharges):    "Charges",
	string(FieldTotalDistance):   "Total KM",
	string(FieldRatePerDistance): "Rate per KM",
	string(FieldRatePerDay):      "Rate per Day",
}

// Label returns the human-readable label for a field name. Names without an
// override are split on camel-case boundaries: "rentalPeriod" becomes
// "Rental Period".
func Label(name string) string {
	if l, ok := fieldLabels[name]; ok {
		return l
	}
	words := camelcase.Split(name)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
