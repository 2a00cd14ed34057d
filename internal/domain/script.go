package domain

import "fmt"

// FirstItemRef names the line item every session starts with.
const FirstItemRef = "first"

// EditScript is a recorded sequence of surface edits, replayed by the
// render command and by tests.
type EditScript struct {
	Steps []EditStep `yaml:"steps" json:"steps"`
}

// EditStep is one edit. Exactly one of Set, Add, Remove or Update is used.
// Line items are addressed by Ref names rather than ids, since ids are
// only known once the session runs.
type EditStep struct {
	Set    string `yaml:"set,omitempty"    json:"set,omitempty"`
	Add    bool   `yaml:"add,omitempty"    json:"add,omitempty"`
	Ref    string `yaml:"ref,omitempty"    json:"ref,omitempty"`
	Remove string `yaml:"remove,omitempty" json:"remove,omitempty"`
	Update string `yaml:"update,omitempty" json:"update,omitempty"`
	Field  string `yaml:"field,omitempty"  json:"field,omitempty"`
	Value  string `yaml:"value,omitempty"  json:"value,omitempty"`
}

// ScriptReport summarizes a replayed edit script.
type ScriptReport struct {
	Applied  int      `json:"applied"`
	Rejected int      `json:"rejected"`
	Skipped  []string `json:"skipped,omitempty"`
}

// Validate checks that every step names exactly one action and known fields.
func (s EditScript) Validate() error {
	for i, st := range s.Steps {
		actions := 0
		if st.Set != "" {
			actions++
			if _, ok := ParseInvoiceField(st.Set); !ok {
				return fmt.Errorf("steps[%d]: unknown invoice field %q", i, st.Set)
			}
		}
		if st.Add {
			actions++
		}
		if st.Remove != "" {
			actions++
		}
		if st.Update != "" {
			actions++
			if _, ok := ParseLineItemField(st.Field); !ok {
				return fmt.Errorf("steps[%d]: unknown line item field %q", i, st.Field)
			}
		}
		if actions != 1 {
			return fmt.Errorf("steps[%d]: expected exactly one of set, add, remove, update (got %d)", i, actions)
		}
		if st.Ref == FirstItemRef && st.Add {
			return fmt.Errorf("steps[%d]: ref %q is reserved", i, FirstItemRef)
		}
	}
	return nil
}
