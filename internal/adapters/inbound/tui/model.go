package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/notify"
	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/tui"
	"github.com/tripinvoice/tripinvoice/internal/application"
)

const toastDuration = 3 * time.Second

// focusable is one editable field in tab order.
type focusable struct {
	key     string
	rowID   string
	binding application.FieldBinding
}

// clearToastMsg expires the toast with the given sequence number.
type clearToastMsg struct{ seq int }

// Model is the bubbletea program for one invoice session. It renders the
// session's chosen surface and forwards every edit through that surface's
// bindings.
type Model struct {
	session *application.Session
	notices *notify.Queue
	keys    KeyMap
	help    help.Model

	inputs map[string]textinput.Model
	focus  int
	width  int

	toast    *tui.Toast
	toastSeq int
	quitting bool
}

// New creates the model. width is the initial terminal width, 0 if unknown.
func New(session *application.Session, notices *notify.Queue, width int) *Model {
	m := &Model{
		session: session,
		notices: notices,
		keys:    DefaultKeyMap,
		help:    help.New(),
		inputs:  map[string]textinput.Model{},
		width:   width,
	}
	m.sync()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		m.sync()
		return m, tea.Batch(cmd, m.takeToast())
	}

	cmd := m.updateFocused(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	wizard := m.session.Kind() == application.SurfaceWizard

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit

	case key.Matches(msg, m.keys.NextField):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevField):
		m.moveFocus(-1)

	case key.Matches(msg, m.keys.AddRow):
		if !wizard || m.session.Wizard().ShowsLineItems() {
			m.session.Surface().AddLineItem().Click()
			m.focusLastRow()
		}

	case key.Matches(msg, m.keys.RemoveRow):
		if row, ok := m.focusedRow(); ok {
			row.Remove.Click()
		}

	case key.Matches(msg, m.keys.Print):
		if wizard {
			m.session.Wizard().SavePDFButton(nil).Click()
		} else {
			m.session.Editor().PrintButton(nil).Click()
		}
	case key.Matches(msg, m.keys.SavePDF):
		if wizard {
			m.session.Wizard().SavePDFButton(nil).Click()
		} else {
			m.session.Editor().SavePDFButton(nil).Click()
		}

	case wizard && key.Matches(msg, m.keys.NextStep):
		m.session.Wizard().NextButton().Click()
		m.focus = 0
	case wizard && key.Matches(msg, m.keys.PrevStep):
		m.session.Wizard().BackButton().Click()
		m.focus = 0

	case key.Matches(msg, m.keys.Cycle):
		if !m.cycleOption(1) {
			return m.updateFocused(msg)
		}
	case key.Matches(msg, m.keys.CycleBack):
		if !m.cycleOption(-1) {
			return m.updateFocused(msg)
		}

	default:
		return m.updateFocused(msg)
	}
	return nil
}

// updateFocused passes msg to the focused text input and forwards a changed
// value to the field's binding.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	f, ok := m.focused()
	if !ok || f.binding.Kind == application.KindSelect {
		return nil
	}
	in := m.inputs[f.key]
	before := in.Value()
	in, cmd := in.Update(msg)
	m.inputs[f.key] = in
	if in.Value() != before {
		f.binding.OnChange(in.Value())
	}
	return cmd
}

// cycleOption steps a focused select field through its options. It reports
// false when the focused field is not a select.
func (m *Model) cycleOption(delta int) bool {
	f, ok := m.focused()
	if !ok || f.binding.Kind != application.KindSelect || len(f.binding.Options) == 0 {
		return false
	}
	opts := f.binding.Options
	i := 0
	for j, o := range opts {
		if o == f.binding.Value {
			i = j
			break
		}
	}
	i = (i + delta + len(opts)) % len(opts)
	f.binding.OnChange(opts[i])
	return true
}

// focusables lists the editable fields of the visible surface in tab order.
func (m *Model) focusables() []focusable {
	var out []focusable
	add := func(b application.FieldBinding, rowID string) {
		if !b.Editable() {
			return
		}
		k := "f:" + b.Name
		if rowID != "" {
			k = "r:" + rowID + ":" + b.Name
		}
		out = append(out, focusable{key: k, rowID: rowID, binding: b})
	}
	addRows := func(rows []application.LineItemBindings) {
		for _, r := range rows {
			for _, b := range r.Fields {
				add(b, r.ID)
			}
		}
	}

	if m.session.Kind() == application.SurfaceWizard {
		w := m.session.Wizard()
		if w.ShowsLineItems() {
			addRows(w.LineItems())
		}
		for _, b := range w.StepFields() {
			add(b, "")
		}
		return out
	}

	e := m.session.Editor()
	sections := e.Sections()
	for _, s := range sections[:2] {
		for _, b := range s.Fields {
			add(b, "")
		}
	}
	addRows(e.LineItems())
	for _, s := range sections[2:] {
		for _, b := range s.Fields {
			add(b, "")
		}
	}
	return out
}

func (m *Model) focused() (focusable, bool) {
	fs := m.focusables()
	if len(fs) == 0 {
		return focusable{}, false
	}
	return fs[min(m.focus, len(fs)-1)], true
}

func (m *Model) focusedRow() (application.LineItemBindings, bool) {
	f, ok := m.focused()
	if !ok || f.rowID == "" {
		return application.LineItemBindings{}, false
	}
	for _, r := range m.session.Surface().LineItems() {
		if r.ID == f.rowID {
			return r, true
		}
	}
	return application.LineItemBindings{}, false
}

func (m *Model) moveFocus(delta int) {
	n := len(m.focusables())
	if n == 0 {
		m.focus = 0
		return
	}
	m.focus = (m.focus + delta + n) % n
}

// focusLastRow moves focus to the first field of the newest line item.
func (m *Model) focusLastRow() {
	rows := m.session.Surface().LineItems()
	if len(rows) == 0 {
		return
	}
	last := rows[len(rows)-1].ID
	for i, f := range m.focusables() {
		if f.rowID == last {
			m.focus = i
			return
		}
	}
}

// sync reconciles text inputs with the current bindings: inputs are created
// for new fields, dropped for removed ones, and refreshed from the store
// unless focused.
func (m *Model) sync() {
	fs := m.focusables()
	if m.focus >= len(fs) {
		m.focus = max(0, len(fs)-1)
	}
	live := make(map[string]bool, len(fs))
	for i, f := range fs {
		live[f.key] = true
		in, ok := m.inputs[f.key]
		if !ok {
			in = textinput.New()
			in.Prompt = ""
			in.Placeholder = f.binding.Placeholder
			in.SetValue(f.binding.Value)
		}
		if i == m.focus {
			if in.Value() != f.binding.Value {
				in.SetValue(f.binding.Value)
			}
			in.Focus()
		} else {
			in.Blur()
			in.SetValue(f.binding.Value)
		}
		m.inputs[f.key] = in
	}
	for k := range m.inputs {
		if !live[k] {
			delete(m.inputs, k)
		}
	}
}

// takeToast shows the newest pending notification and schedules its expiry.
func (m *Model) takeToast() tea.Cmd {
	if m.notices == nil {
		return nil
	}
	pending := m.notices.Drain()
	if len(pending) == 0 {
		return nil
	}
	t := pending[len(pending)-1]
	m.toast = &t
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg { return clearToastMsg{seq: seq} })
}

// Toast returns the notification currently shown, if any.
func (m *Model) Toast() (tui.Toast, bool) {
	if m.toast == nil {
		return tui.Toast{}, false
	}
	return *m.toast, true
}

// FocusedField returns the name of the focused field and its line item id,
// empty for top-level fields.
func (m *Model) FocusedField() (name, rowID string) {
	f, ok := m.focused()
	if !ok {
		return "", ""
	}
	return f.binding.Name, f.rowID
}
