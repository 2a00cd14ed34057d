package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ToastKind distinguishes confirmation toasts from warnings.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastWarning ToastKind = "warning"
)

// Toast is one transient notification.
type Toast struct {
	Kind    ToastKind
	Message string
}

var (
	toastSuccessStyle = lipgloss.NewStyle().
				Foreground(success).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(success).
				Padding(0, 1)
	toastWarningStyle = lipgloss.NewStyle().
				Foreground(warning).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(warning).
				Padding(0, 1)

	focusMarker   = lipgloss.NewStyle().Foreground(accent).Render("›")
	fieldLabel    = lipgloss.NewStyle().Foreground(dim)
	focusedLabel  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	readOnlyValue = lipgloss.NewStyle().Foreground(success)
	surfaceTitle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
)

const fieldLabelSize = 18

// RenderToast renders a notification as a small bordered box.
func RenderToast(t Toast) string {
	if t.Kind == ToastWarning {
		return toastWarningStyle.Render("! " + t.Message)
	}
	return toastSuccessStyle.Render("✓ " + t.Message)
}

// RenderToastLine renders a notification on one unboxed line, for plain
// command output.
func RenderToastLine(t Toast) string {
	if t.Kind == ToastWarning {
		return warnStyle.Render("! ") + t.Message
	}
	return passStyle.Render("✓ ") + t.Message
}

// RenderSectionTitle renders a group heading with a rule beneath it.
func RenderSectionTitle(title string) string {
	return "  " + titleStyle.Render(title) + "\n  " + faintStyle.Render(strings.Repeat("─", 40))
}

// RenderFieldRow renders one labelled input. input is the already rendered
// widget; read-only values are shown in place of a widget.
func RenderFieldRow(label, input string, focused, readOnly bool) string {
	marker := " "
	lbl := fieldLabel.Render(padRight(label, fieldLabelSize))
	if focused {
		marker = focusMarker
		lbl = focusedLabel.Render(padRight(label, fieldLabelSize))
	}
	if readOnly {
		input = readOnlyValue.Render(input) + " " + faintStyle.Render("(computed)")
	}
	return fmt.Sprintf(" %s %s %s", marker, lbl, input)
}

// RenderSurfaceTitle renders the top line of an interactive surface.
func RenderSurfaceTitle(title, subtitle string) string {
	return surfaceTitle.Render(title) + "  " + dimStyle.Render(subtitle)
}

// RenderProgress renders the wizard step header with a progress bar.
func RenderProgress(title string, step, count, pct int) string {
	counter := dimStyle.Render(fmt.Sprintf("Step %d of %d", step, count))
	return fmt.Sprintf("  %s  %s\n  %s %s",
		titleStyle.Render(title), counter,
		coloredBar(pct, 30), dimStyle.Render(fmt.Sprintf("%d%%", pct)))
}

func coloredBar(pct, width int) string {
	filled := max(0, min(pct*width/100, width))
	empty := width - filled

	filledStr := lipgloss.NewStyle().Foreground(accent).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}
