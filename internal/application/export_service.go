package application

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tripinvoice/tripinvoice/internal/domain"
)

// ExportService hands a snapshot of the current document to the exporter.
type ExportService struct {
	store    *InvoiceStore
	cfg      domain.ProjectConfig
	exporter domain.Exporter
	notifier domain.Notifier
	log      *zap.Logger
}

func NewExportService(
	store *InvoiceStore,
	cfg domain.ProjectConfig,
	exporter domain.Exporter,
	notifier domain.Notifier,
	log *zap.Logger,
) *ExportService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExportService{
		store:    store,
		cfg:      cfg,
		exporter: exporter,
		notifier: notifier,
		log:      log.Named("export"),
	}
}

// Export renders the current record and passes it to the exporter under the
// title "Invoice_<number>" ("Invoice_Draft" without a number). doneMessage is
// shown once the exporter completes; onComplete runs after it.
func (s *ExportService) Export(doneMessage string, onComplete func()) error {
	rec := s.store.Snapshot()
	view := RenderDocument(rec, s.cfg)
	title := rec.DocumentTitle()

	s.log.Debug("exporting", zap.String("title", title), zap.Int("rows", len(view.Rows)))
	err := s.exporter.PrintDocument(view, title, func() {
		if doneMessage != "" {
			s.notifySuccess(doneMessage)
		}
		if onComplete != nil {
			onComplete()
		}
	})
	if err != nil {
		s.log.Warn("export failed", zap.String("title", title), zap.Error(err))
		s.notifyWarning(fmt.Sprintf("Could not export %s: %v", title, err))
		return fmt.Errorf("exporting %s: %w", title, err)
	}
	return nil
}

func (s *ExportService) notifySuccess(msg string) {
	if s.notifier != nil {
		s.notifier.Success(msg)
	}
}

func (s *ExportService) notifyWarning(msg string) {
	if s.notifier != nil {
		s.notifier.Warning(msg)
	}
}
