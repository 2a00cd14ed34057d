package domain

// WizardStep is one screen of the compact step wizard.
type WizardStep int

const (
	StepInvoice WizardStep = iota + 1
	StepCustomer
	StepVehicles
	StepReview
)

// WizardStepCount is the number of wizard steps.
const WizardStepCount = int(StepReview)

var stepTitles = map[WizardStep]string{
	StepInvoice:  "Invoice Details",
	StepCustomer: "Customer Details",
	StepVehicles: "Vehicle Details",
	StepReview:   "Review & Generate",
}

// Next returns the following step. The last step is returned unchanged.
func (s WizardStep) Next() WizardStep {
	if s >= StepReview {
		return StepReview
	}
	return s + 1
}

// Back returns the preceding step. The first step is returned unchanged.
func (s WizardStep) Back() WizardStep {
	if s <= StepInvoice {
		return StepInvoice
	}
	return s - 1
}

func (s WizardStep) IsFirst() bool { return s == StepInvoice }
func (s WizardStep) IsLast() bool  { return s == StepReview }

// Title returns the heading shown for the step.
func (s WizardStep) Title() string { return stepTitles[s] }

// Progress returns completion as a percentage.
func (s WizardStep) Progress() int {
	return int(s) * 100 / WizardStepCount
}

// Fields returns the top-level fields edited on the step. Line items are
// edited on StepVehicles in addition to the fields listed here.
func (s WizardStep) Fields() []InvoiceField {
	switch s {
	case StepInvoice:
		return []InvoiceField{FieldInvoiceNumber, FieldDate}
	case StepCustomer:
		return []InvoiceField{FieldCustomerName, FieldPhone, FieldAddress, FieldPaymentMode}
	case StepVehicles:
		return []InvoiceField{FieldTotalAmount}
	}
	return nil
}
