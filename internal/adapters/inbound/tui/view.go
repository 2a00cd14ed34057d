package tui

import (
	"fmt"
	"strings"

	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/tui"
	"github.com/tripinvoice/tripinvoice/internal/application"
	"github.com/tripinvoice/tripinvoice/internal/domain"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.session.Kind() == application.SurfaceWizard {
		m.viewWizard(&b)
	} else {
		m.viewEditor(&b)
	}

	if t, ok := m.Toast(); ok {
		b.WriteString("\n")
		b.WriteString(tui.RenderToast(t))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewEditor(b *strings.Builder) {
	e := m.session.Editor()
	b.WriteString(tui.RenderSurfaceTitle("Invoice Generator", "editor"))
	b.WriteString("\n\n")

	sections := e.Sections()
	for _, s := range sections[:2] {
		m.writeSection(b, s.Title, s.Fields, "")
	}
	b.WriteString(tui.RenderSectionTitle("Vehicle Details") + "\n")
	m.writeRows(b, e.LineItems())
	for _, s := range sections[2:] {
		m.writeSection(b, s.Title, s.Fields, "")
	}

	b.WriteString(tui.RenderSectionTitle("Preview") + "\n")
	b.WriteString(tui.RenderDocument(e.Document(), m.width))
	b.WriteString("\n")
	b.WriteString(m.help.View(editorHelp{m.keys}))
}

func (m *Model) viewWizard(b *strings.Builder) {
	w := m.session.Wizard()
	b.WriteString(tui.RenderProgress(w.Title(), int(w.Step()), domain.WizardStepCount, w.Progress()))
	b.WriteString("\n\n")

	if w.ShowsLineItems() {
		m.writeRows(b, w.LineItems())
	}
	for _, f := range w.StepFields() {
		b.WriteString(m.fieldRow(f, "") + "\n")
	}
	if w.IsReview() {
		b.WriteString(tui.RenderDocument(w.Document(), m.width))
	}

	b.WriteString("\n")
	var nav []string
	if w.CanBack() {
		nav = append(nav, "‹ "+w.BackButton().Label)
	}
	if w.CanNext() {
		nav = append(nav, w.NextButton().Label+" ›")
	}
	if btn := w.SavePDFButton(nil); btn.Enabled {
		nav = append(nav, "["+btn.Label+"]")
	}
	b.WriteString("  " + strings.Join(nav, "   ") + "\n\n")
	b.WriteString(m.help.View(wizardHelp{m.keys}))
}

func (m *Model) writeSection(b *strings.Builder, title string, fields []application.FieldBinding, rowID string) {
	b.WriteString(tui.RenderSectionTitle(title) + "\n")
	for _, f := range fields {
		b.WriteString(m.fieldRow(f, rowID) + "\n")
	}
	b.WriteString("\n")
}

func (m *Model) writeRows(b *strings.Builder, rows []application.LineItemBindings) {
	for _, r := range rows {
		m.writeSection(b, fmt.Sprintf("Vehicle #%d", r.Number), r.Fields, r.ID)
	}
}

func (m *Model) fieldRow(f application.FieldBinding, rowID string) string {
	name, focusedRow := m.FocusedField()
	focused := name == f.Name && focusedRow == rowID && f.Editable()

	switch {
	case !f.Editable():
		return tui.RenderFieldRow(f.Label, f.Value, false, true)
	case f.Kind == application.KindSelect:
		return tui.RenderFieldRow(f.Label, renderSelect(f), focused, false)
	}

	k := "f:" + f.Name
	if rowID != "" {
		k = "r:" + rowID + ":" + f.Name
	}
	input := f.Value
	if in, ok := m.inputs[k]; ok {
		input = in.View()
	}
	return tui.RenderFieldRow(f.Label, input, focused, false)
}

func renderSelect(f application.FieldBinding) string {
	opts := make([]string, len(f.Options))
	for i, o := range f.Options {
		if o == f.Value {
			opts[i] = "(" + o + ")"
		} else {
			opts[i] = o
		}
	}
	return strings.Join(opts, " ")
}
