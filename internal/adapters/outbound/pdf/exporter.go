package pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/tripinvoice/tripinvoice/internal/domain"
)

// Table column widths in millimetres; they add up to the A4 printable width.
var columnWidths = []float64{12, 40, 20, 26, 22, 20, 20, 30}

const (
	pageMargin = 10.0
	lineHeight = 6.0
)

// The core PDF fonts only cover cp1252; symbols outside it are spelled out.
var symbolReplacer = strings.NewReplacer("₹", "Rs. ")

// Renderer lays out a DocumentView as an A4 PDF.
type Renderer struct {
	// Compress toggles stream compression. Uncompressed output is larger but
	// its text can be searched.
	Compress bool
}

func NewRenderer() *Renderer { return &Renderer{Compress: true} }

// Render writes the PDF for view to w.
func (r *Renderer) Render(w io.Writer, view domain.DocumentView, title string) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCompression(r.Compress)
	doc.SetTitle(title, true)
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(symbolReplacer.Replace(s)) }
	pageWidth, _ := doc.GetPageSize()
	contentWidth := pageWidth - 2*pageMargin

	// Header
	doc.SetFont("Arial", "B", 16)
	doc.CellFormat(contentWidth, 8, text(view.Business.Name), "", 1, "C", false, 0, "")
	doc.SetFont("Arial", "", 10)
	doc.CellFormat(contentWidth, lineHeight, text(view.Business.Address), "B", 1, "C", false, 0, "")
	doc.Ln(4)

	// Details, invoice on the left and customer on the right.
	half := contentWidth / 2
	rows := max(len(view.InvoiceDetails), len(view.CustomerDetails))
	for i := 0; i < rows; i++ {
		left, right := "", ""
		if i < len(view.InvoiceDetails) {
			left = view.InvoiceDetails[i].Label + ": " + view.InvoiceDetails[i].Value
		}
		if i < len(view.CustomerDetails) {
			right = view.CustomerDetails[i].Label + ": " + view.CustomerDetails[i].Value
		}
		doc.CellFormat(half, lineHeight, text(left), "", 0, "L", false, 0, "")
		doc.CellFormat(half, lineHeight, text(right), "", 1, "L", false, 0, "")
	}
	doc.Ln(4)

	// Table
	doc.SetFont("Arial", "B", 9)
	doc.SetFillColor(243, 244, 246)
	for i, c := range view.Columns {
		doc.CellFormat(columnWidth(i), 7, text(c), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)
	doc.SetFont("Arial", "", 9)
	for _, row := range view.Rows {
		for i, c := range row.Cells {
			doc.CellFormat(columnWidth(i), 7, text(c), "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}

	// Total
	doc.Ln(2)
	doc.SetFont("Arial", "B", 11)
	doc.CellFormat(contentWidth, 8, text(view.TotalLabel+": "+view.Total), "", 1, "R", false, 0, "")

	// Footer
	doc.Ln(20)
	doc.SetFont("Arial", "", 10)
	doc.CellFormat(half, lineHeight, text(view.Footer.CustomerSignature), "T", 0, "L", false, 0, "")
	doc.CellFormat(half, lineHeight, text("For "+view.Footer.BusinessName), "", 1, "R", false, 0, "")
	if view.Footer.Signatory != "" {
		doc.CellFormat(contentWidth, lineHeight, text(view.Footer.Signatory), "", 1, "R", false, 0, "")
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func columnWidth(i int) float64 {
	if i < len(columnWidths) {
		return columnWidths[i]
	}
	return columnWidths[len(columnWidths)-1]
}

// Exporter implements domain.Exporter by writing <dir>/<title>.pdf.
type Exporter struct {
	renderer *Renderer
	dir      string
	log      *zap.Logger
}

func NewExporter(dir string, log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{renderer: NewRenderer(), dir: dir, log: log.Named("pdf")}
}

// Path returns where a document with the given title is written. The file
// name is derived from the title and always stays inside the export dir.
func (e *Exporter) Path(title string) string {
	return filepath.Join(e.dir, domain.DocumentFileName(title)+".pdf")
}

func (e *Exporter) PrintDocument(view domain.DocumentView, title string, onComplete func()) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", e.dir, err)
	}
	path := e.Path(title)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := e.renderer.Render(f, view, title); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	e.log.Info("document written", zap.String("path", path), zap.Int("rows", len(view.Rows)))
	if onComplete != nil {
		onComplete()
	}
	return nil
}
