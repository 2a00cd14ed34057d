package viewport

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// Probe implements domain.ViewportProbe from the terminal width.
type Probe struct {
	compactWidth int
	width        func() (int, error)
}

// New probes the terminal attached to stdout. A width below compactWidth
// counts as compact.
func New(compactWidth int) *Probe {
	return &Probe{compactWidth: compactWidth, width: stdoutWidth}
}

// NewWithWidth uses width in place of the terminal query.
func NewWithWidth(compactWidth int, width func() (int, error)) *Probe {
	return &Probe{compactWidth: compactWidth, width: width}
}

// IsCompact reports whether the editor would not fit. Output that is not a
// terminal, or whose size cannot be read, is treated as wide.
func (p *Probe) IsCompact() bool {
	w, err := p.width()
	if err != nil || w <= 0 {
		return false
	}
	return w < p.compactWidth
}

// Width returns the current width, or 0 when unknown.
func (p *Probe) Width() int {
	w, err := p.width()
	if err != nil {
		return 0
	}
	return w
}

func stdoutWidth() (int, error) {
	fd := os.Stdout.Fd()
	if !term.IsTerminal(fd) {
		return 0, nil
	}
	w, _, err := term.GetSize(fd)
	return w, err
}
