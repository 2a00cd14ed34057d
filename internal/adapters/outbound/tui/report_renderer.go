package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tripinvoice/tripinvoice/internal/domain"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	warningItemStyle   = lipgloss.NewStyle().Foreground(warning)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderScriptReport summarizes a replayed edit script.
func RenderScriptReport(report *domain.ScriptReport) string {
	var b strings.Builder

	applied := passStyle.Render(fmt.Sprintf("%d applied", report.Applied))
	line := "  " + titleStyle.Render("Script") + "  " + applied
	if report.Rejected > 0 {
		line += "  " + failStyle.Render(fmt.Sprintf("%d rejected", report.Rejected))
	}
	if len(report.Skipped) > 0 {
		line += "  " + warnStyle.Render(fmt.Sprintf("%d skipped", len(report.Skipped)))
	}
	b.WriteString(line + "\n")

	if len(report.Skipped) == 0 {
		return b.String()
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n",
		sectionHeaderStyle.Render("Skipped Steps"),
		dimStyle.Render(fmt.Sprintf("(%d)", len(report.Skipped))),
	)
	for _, s := range report.Skipped {
		fmt.Fprintf(&b, "    %s %s\n", warningItemStyle.Render("●"), s)
	}
	b.WriteString("\n")
	b.WriteString("  " + hintStyle.Render("Computed totals are read-only unless subtotal_policy is authored."))
	b.WriteString("\n")
	return b.String()
}
