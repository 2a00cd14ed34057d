package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tripinvoice/tripinvoice/internal/domain"
)

// RenderExportHistory lists exported documents, newest last.
func RenderExportHistory(entries []domain.ExportEntry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "  %s %s\n\n",
		titleStyle.Render("Exports"),
		dimStyle.Render(fmt.Sprintf("(%d)", len(entries))),
	)
	if len(entries) == 0 {
		b.WriteString("  " + hintStyle.Render("Nothing exported yet.") + "\n")
		return b.String()
	}

	titleWidth := 0
	for _, e := range entries {
		titleWidth = max(titleWidth, lipgloss.Width(e.Title))
	}
	for _, e := range entries {
		fmt.Fprintf(&b, "  %s  %s  %s  %s\n",
			dimStyle.Render(e.Timestamp),
			labelStyle.Render(padRight(e.Title, titleWidth)),
			totalStyle.Render(e.Total),
			faintStyle.Render(e.Path),
		)
	}
	return b.String()
}
