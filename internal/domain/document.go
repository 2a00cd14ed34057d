package domain

// Placeholder is shown for empty cells in the document table.
const Placeholder = "-"

// DocumentView is the render-ready projection of an InvoiceRecord. Every
// value is already formatted; renderers only lay it out.
type DocumentView struct {
	Business        Business       `json:"business"`
	InvoiceDetails  []DetailLine   `json:"invoice_details"`
	CustomerDetails []DetailLine   `json:"customer_details"`
	Columns         []string       `json:"columns"`
	Rows            []DocumentRow  `json:"rows"`
	TotalLabel      string         `json:"total_label"`
	Total           string         `json:"total"`
	Footer          DocumentFooter `json:"footer"`
	Policy          SubtotalPolicy `json:"policy"`
}

// DetailLine is one "Label: value" pair.
type DetailLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DocumentRow is one table row; Cells align with DocumentView.Columns.
type DocumentRow struct {
	ID    string   `json:"id"`
	Cells []string `json:"cells"`
}

// DocumentFooter carries the signature block.
type DocumentFooter struct {
	CustomerSignature string `json:"customer_signature"`
	Signatory         string `json:"signatory,omitempty"`
	BusinessName      string `json:"business_name"`
}

// DocumentColumns is the fixed column set of the line item table.
var DocumentColumns = []string{
	"Sr. No.", "Description", "Charges", "Rental Period",
	"Rate/Day", "Total KM", "Rate/KM", "Subtotal",
}
