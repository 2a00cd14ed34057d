package application

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tripinvoice/tripinvoice/internal/domain"
)

// ScriptService replays edit scripts through a surface, the same way a
// user would type them.
type ScriptService struct {
	log *zap.Logger
}

func NewScriptService(log *zap.Logger) *ScriptService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScriptService{log: log.Named("script")}
}

// Apply replays script on surface. Steps naming unknown line items, or
// fields the surface shows read-only, are skipped and listed in the report.
func (s *ScriptService) Apply(surface Surface, script *domain.EditScript) (*domain.ScriptReport, error) {
	if err := script.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}

	report := &domain.ScriptReport{}
	refs := map[string]string{}
	if items := surface.LineItems(); len(items) > 0 {
		refs[domain.FirstItemRef] = items[0].ID
	}

	skip := func(i int, why string) {
		s.log.Debug("step skipped", zap.Int("step", i), zap.String("reason", why))
		report.Skipped = append(report.Skipped, fmt.Sprintf("steps[%d]: %s", i, why))
	}

	for i, st := range script.Steps {
		switch {
		case st.Set != "":
			f, _ := domain.ParseInvoiceField(st.Set)
			b, ok := s.field(surface, f)
			if !ok || !b.Editable() {
				skip(i, fmt.Sprintf("%s is not editable on the %s", f, surface.Name()))
				continue
			}
			b.OnChange(st.Value)

		case st.Add:
			s.reveal(surface, domain.StepVehicles)
			surface.AddLineItem().Click()
			items := surface.LineItems()
			if st.Ref != "" {
				refs[st.Ref] = items[len(items)-1].ID
			}

		case st.Remove != "":
			id, ok := refs[st.Remove]
			if !ok {
				skip(i, fmt.Sprintf("unknown line item %q", st.Remove))
				continue
			}
			s.reveal(surface, domain.StepVehicles)
			row, ok := findRow(surface.LineItems(), id)
			if !ok {
				skip(i, fmt.Sprintf("line item %q was already removed", st.Remove))
				continue
			}
			row.Remove.Click()
			if _, still := findRow(surface.LineItems(), id); still {
				report.Rejected++
				continue
			}

		case st.Update != "":
			id, ok := refs[st.Update]
			if !ok {
				skip(i, fmt.Sprintf("unknown line item %q", st.Update))
				continue
			}
			s.reveal(surface, domain.StepVehicles)
			row, ok := findRow(surface.LineItems(), id)
			if !ok {
				skip(i, fmt.Sprintf("line item %q was already removed", st.Update))
				continue
			}
			f, _ := domain.ParseLineItemField(st.Field)
			b, ok := row.Field(string(f))
			if !ok || !b.Editable() {
				skip(i, fmt.Sprintf("%s is not editable on the %s", f, surface.Name()))
				continue
			}
			b.OnChange(st.Value)
		}
		report.Applied++
	}

	s.log.Debug("script applied",
		zap.String("surface", surface.Name()),
		zap.Int("applied", report.Applied),
		zap.Int("rejected", report.Rejected),
		zap.Int("skipped", len(report.Skipped)),
	)
	return report, nil
}

// field finds the binding for f. On the wizard it walks to the step that
// shows the field first.
func (s *ScriptService) field(surface Surface, f domain.InvoiceField) (FieldBinding, bool) {
	w, ok := surface.(*WizardSurface)
	if !ok {
		return FindField(surface, string(f))
	}
	for st := domain.StepInvoice; st <= domain.StepReview; st++ {
		for _, sf := range st.Fields() {
			if sf == f {
				s.reveal(w, st)
			}
		}
	}
	return findBinding(w.StepFields(), string(f))
}

// reveal walks the wizard one step at a time until target is active. Other
// surfaces show everything at once.
func (s *ScriptService) reveal(surface Surface, target domain.WizardStep) {
	w, ok := surface.(*WizardSurface)
	if !ok {
		return
	}
	for w.Step() < target && w.CanNext() {
		w.Next()
	}
	for w.Step() > target && w.CanBack() {
		w.Back()
	}
}

func findRow(rows []LineItemBindings, id string) (LineItemBindings, bool) {
	for _, r := range rows {
		if r.ID == id {
			return r, true
		}
	}
	return LineItemBindings{}, false
}
