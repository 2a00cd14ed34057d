package htmldoc

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/tripinvoice/tripinvoice/internal/domain"
)

const invoiceHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #ffffff;
    }
    .invoice {
      max-width: 900px;
      margin: 0 auto;
    }
    .header {
      text-align: center;
      border-bottom: 2px solid #111827;
      padding-bottom: 16px;
      margin-bottom: 24px;
    }
    .header h1 {
      margin: 0 0 4px;
      font-size: 24px;
      letter-spacing: 0.04em;
    }
    .details {
      display: flex;
      justify-content: space-between;
      margin-bottom: 24px;
      font-size: 14px;
    }
    .details div { margin-bottom: 4px; }
    .label { font-weight: bold; }
    table {
      width: 100%;
      border-collapse: collapse;
      font-size: 13px;
    }
    th, td {
      padding: 8px;
      border: 1px solid #d1d5db;
      text-align: left;
    }
    th { background: #f3f4f6; }
    .totals {
      margin-top: 12px;
      text-align: right;
      font-size: 16px;
      font-weight: bold;
    }
    .footer {
      display: flex;
      justify-content: space-between;
      margin-top: 64px;
      font-size: 13px;
    }
    .signature { text-align: right; }
    @media print {
      body { padding: 0; }
    }
  </style>
</head>
<body>
  <div class="invoice">
    <div class="header">
      <h1>{{.View.Business.Name}}</h1>
      <div>{{.View.Business.Address}}</div>
    </div>

    <div class="details">
      <div>
        {{range .View.InvoiceDetails}}<div><span class="label">{{.Label}}:</span> {{.Value}}</div>
        {{end}}
      </div>
      <div>
        {{range .View.CustomerDetails}}<div><span class="label">{{.Label}}:</span> {{.Value}}</div>
        {{end}}
      </div>
    </div>

    <table>
      <thead>
        <tr>
          {{range .View.Columns}}<th>{{.}}</th>{{end}}
        </tr>
      </thead>
      <tbody>
        {{range .View.Rows}}
        <tr data-id="{{.ID}}">
          {{range .Cells}}<td>{{.}}</td>{{end}}
        </tr>
        {{end}}
      </tbody>
    </table>
    <div class="totals">{{.View.TotalLabel}}: {{.View.Total}}</div>

    <div class="footer">
      <div>{{.View.Footer.CustomerSignature}}</div>
      <div class="signature">
        <div>For {{.View.Footer.BusinessName}}</div>
        {{if .View.Footer.Signatory}}<div>{{.View.Footer.Signatory}}</div>{{end}}
      </div>
    </div>
  </div>
</body>
</html>
`

// Renderer turns a DocumentView into a printable HTML page.
type Renderer struct {
	tpl *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		tpl: template.Must(template.New("invoice").Parse(invoiceHTMLTemplate)),
	}
}

// RenderHTML renders view as a standalone HTML page titled title.
func (r *Renderer) RenderHTML(view domain.DocumentView, title string) (string, error) {
	var buf bytes.Buffer
	input := struct {
		Title string
		View  domain.DocumentView
	}{Title: title, View: view}
	if err := r.tpl.Execute(&buf, input); err != nil {
		return "", fmt.Errorf("rendering %s: %w", title, err)
	}
	return buf.String(), nil
}

// Exporter implements domain.Exporter by writing <dir>/<title>.html.
type Exporter struct {
	renderer *Renderer
	dir      string
}

func NewExporter(dir string) *Exporter {
	return &Exporter{renderer: NewRenderer(), dir: dir}
}

func (e *Exporter) PrintDocument(view domain.DocumentView, title string, onComplete func()) error {
	page, err := e.renderer.RenderHTML(view, title)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", e.dir, err)
	}
	path := e.Path(title)
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if onComplete != nil {
		onComplete()
	}
	return nil
}

// Path returns where a document with the given title is written. The file
// name is derived from the title and always stays inside the export dir.
func (e *Exporter) Path(title string) string {
	return filepath.Join(e.dir, domain.DocumentFileName(title)+".html")
}
