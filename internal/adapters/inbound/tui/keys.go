package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the interactive surfaces.
type KeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Cycle     key.Binding
	CycleBack key.Binding
	AddRow    key.Binding
	RemoveRow key.Binding
	Print     key.Binding
	SavePDF   key.Binding
	NextStep  key.Binding
	PrevStep  key.Binding
	Quit      key.Binding
}

// DefaultKeyMap is used unless a caller supplies its own.
var DefaultKeyMap = KeyMap{
	NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	Cycle:     key.NewBinding(key.WithKeys("right"), key.WithHelp("←/→", "change option")),
	CycleBack: key.NewBinding(key.WithKeys("left")),
	AddRow:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add vehicle")),
	RemoveRow: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "remove vehicle")),
	Print:     key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "print")),
	SavePDF:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save pdf")),
	NextStep:  key.NewBinding(key.WithKeys("pgdown", "ctrl+right"), key.WithHelp("pgdn", "next step")),
	PrevStep:  key.NewBinding(key.WithKeys("pgup", "ctrl+left"), key.WithHelp("pgup", "back")),
	Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

// editorHelp and wizardHelp adapt the key map to bubbles/help for each
// surface.
type editorHelp struct{ k KeyMap }

func (h editorHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.NextField, h.k.AddRow, h.k.RemoveRow, h.k.Print, h.k.SavePDF, h.k.Quit}
}

func (h editorHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.NextField, h.k.PrevField, h.k.Cycle},
		{h.k.AddRow, h.k.RemoveRow},
		{h.k.Print, h.k.SavePDF, h.k.Quit},
	}
}

type wizardHelp struct{ k KeyMap }

func (h wizardHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.NextField, h.k.NextStep, h.k.PrevStep, h.k.AddRow, h.k.SavePDF, h.k.Quit}
}

func (h wizardHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.NextField, h.k.PrevField},
		{h.k.NextStep, h.k.PrevStep},
		{h.k.AddRow, h.k.RemoveRow, h.k.SavePDF, h.k.Quit},
	}
}
