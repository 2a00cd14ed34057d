package application

import (
	"errors"

	"go.uber.org/zap"

	"github.com/tripinvoice/tripinvoice/internal/domain"
)

var errNoExporter = errors.New("no exporter configured")

// SurfaceKind selects between the two presentation modes.
type SurfaceKind string

const (
	SurfaceAuto   SurfaceKind = ""
	SurfaceEditor SurfaceKind = "editor"
	SurfaceWizard SurfaceKind = "wizard"
)

// SessionDeps are the collaborators a session is wired with.
type SessionDeps struct {
	Clock    domain.Clock
	IDs      domain.IDGenerator
	Notifier domain.Notifier
	Exporter domain.Exporter
	Viewport domain.ViewportProbe
	Log      *zap.Logger
}

// Session is one invoice being composed: the store, the export flow and the
// surface chosen when the session started.
type Session struct {
	cfg     domain.ProjectConfig
	store   *InvoiceStore
	exports *ExportService
	editor  *EditorSurface
	wizard  *WizardSurface
	kind    SurfaceKind
}

// NewSession creates the initial record and picks a surface. With
// SurfaceAuto the viewport is probed once; the choice is not revisited.
func NewSession(cfg domain.ProjectConfig, deps SessionDeps, kind SurfaceKind) *Session {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	initial := domain.NewInvoiceRecord(deps.Clock, deps.IDs, cfg)
	store := NewInvoiceStore(initial, deps.IDs, deps.Notifier, log)

	var exports *ExportService
	if deps.Exporter != nil {
		exports = NewExportService(store, cfg, deps.Exporter, deps.Notifier, log)
	}

	if kind == SurfaceAuto {
		kind = SurfaceEditor
		if deps.Viewport != nil && deps.Viewport.IsCompact() {
			kind = SurfaceWizard
		}
	}
	log.Debug("session started", zap.String("surface", string(kind)), zap.String("policy", string(cfg.SubtotalPolicy)))

	return &Session{
		cfg:     cfg,
		store:   store,
		exports: exports,
		editor:  NewEditorSurface(store, cfg, exports),
		wizard:  NewWizardSurface(store, cfg, exports),
		kind:    kind,
	}
}

func (s *Session) Config() domain.ProjectConfig { return s.cfg }
func (s *Session) Store() *InvoiceStore        { return s.store }
func (s *Session) Kind() SurfaceKind           { return s.kind }
func (s *Session) Editor() *EditorSurface      { return s.editor }
func (s *Session) Wizard() *WizardSurface      { return s.wizard }

// Surface returns the surface chosen for the session.
func (s *Session) Surface() Surface {
	if s.kind == SurfaceWizard {
		return s.wizard
	}
	return s.editor
}

// Document renders the current record.
func (s *Session) Document() domain.DocumentView {
	return RenderDocument(s.store.Snapshot(), s.cfg)
}

// Export hands the current document to the exporter.
func (s *Session) Export(doneMessage string, onComplete func()) error {
	if s.exports == nil {
		return errNoExporter
	}
	return s.exports.Export(doneMessage, onComplete)
}
