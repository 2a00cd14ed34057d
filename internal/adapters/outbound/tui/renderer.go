package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tripinvoice/tripinvoice/internal/domain"
)

// ── Warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	columnStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	totalStyle    = lipgloss.NewStyle().Bold(true).Foreground(success)
	cellSeparator = faintStyle.Render(" │ ")
)

const detailColumnWidth = 34

// RenderDocument lays out a rendered invoice for the terminal. When width is
// positive and the table would not fit, line items are shown as stacked
// cards instead of table rows.
func RenderDocument(view domain.DocumentView, width int) string {
	var b strings.Builder

	// ── Header ──
	header := headerStyle.Render(view.Business.Name) + "\n" + dimStyle.Render(view.Business.Address)
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n\n")

	// ── Details ──
	renderDetails(&b, view.InvoiceDetails, view.CustomerDetails)
	b.WriteString("\n")

	// ── Line items ──
	widths := columnWidths(view)
	if width > 0 && tableWidth(widths) > width-2 {
		renderCards(&b, view)
	} else {
		renderTable(&b, view, widths)
	}

	// ── Total ──
	b.WriteString("\n")
	b.WriteString("  " + labelStyle.Render(view.TotalLabel+":") + " " + totalStyle.Render(view.Total))
	b.WriteString("\n\n")

	// ── Footer ──
	renderFooter(&b, view.Footer)
	return b.String()
}

func renderDetails(b *strings.Builder, left, right []domain.DetailLine) {
	rows := max(len(left), len(right))
	for i := 0; i < rows; i++ {
		l, r := "", ""
		if i < len(left) {
			l = detailLine(left[i])
		}
		if i < len(right) {
			r = detailLine(right[i])
		}
		fmt.Fprintf(b, "  %s  %s\n", padRight(l, detailColumnWidth), r)
	}
}

func detailLine(d domain.DetailLine) string {
	return labelStyle.Render(d.Label+":") + " " + d.Value
}

func renderTable(b *strings.Builder, view domain.DocumentView, widths []int) {
	head := make([]string, len(view.Columns))
	for i, c := range view.Columns {
		head[i] = columnStyle.Render(padRight(c, widths[i]))
	}
	b.WriteString("  " + strings.Join(head, cellSeparator) + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", tableWidth(widths))) + "\n")

	for _, row := range view.Rows {
		cells := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			cells[i] = padRight(c, widths[i])
		}
		b.WriteString("  " + strings.Join(cells, cellSeparator) + "\n")
	}
}

// renderCards prints one block per line item: the row number and
// description as a heading, then the remaining columns as label/value pairs.
func renderCards(b *strings.Builder, view domain.DocumentView) {
	for i, row := range view.Rows {
		if i > 0 {
			b.WriteString("\n")
		}
		heading := row.Cells[0]
		if len(row.Cells) > 1 {
			heading += ". " + row.Cells[1]
		}
		b.WriteString("  " + titleStyle.Render(heading) + "\n")
		for j := 2; j < len(row.Cells) && j < len(view.Columns); j++ {
			fmt.Fprintf(b, "    %s %s\n", dimStyle.Render(view.Columns[j]+":"), row.Cells[j])
		}
	}
}

func renderFooter(b *strings.Builder, f domain.DocumentFooter) {
	right := "For " + f.BusinessName
	fmt.Fprintf(b, "  %s  %s\n", padRight(dimStyle.Render(f.CustomerSignature), detailColumnWidth), dimStyle.Render(right))
	if f.Signatory != "" {
		fmt.Fprintf(b, "  %s  %s\n", padRight("", detailColumnWidth), labelStyle.Render(f.Signatory))
	}
}

func columnWidths(view domain.DocumentView) []int {
	widths := make([]int, len(view.Columns))
	for i, c := range view.Columns {
		widths[i] = lipgloss.Width(c)
	}
	for _, row := range view.Rows {
		for i, c := range row.Cells {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(c))
			}
		}
	}
	return widths
}

func tableWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	if len(widths) > 1 {
		total += (len(widths) - 1) * lipgloss.Width(cellSeparator)
	}
	return total
}

// padRight pads s to width display cells. Styled strings are measured
// without their escape sequences.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
