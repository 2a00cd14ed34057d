package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/tripinvoice/tripinvoice/internal/domain"
)

const historyFile = ".tripinvoice/exports.json"

var _ domain.ExportHistory = (*FileHistory)(nil)

// FileHistory keeps the export log as a JSON file under the export directory.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(dir string, entry domain.ExportEntry) error {
	entries, err := h.Load(dir)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := filepath.Join(dir, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(dir string) ([]domain.ExportEntry, error) {
	fp := filepath.Join(dir, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.ExportEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fp, err)
	}

	return entries, nil
}

// PathExporter is an exporter that reports where it writes.
type PathExporter interface {
	domain.Exporter
	Path(title string) string
}

// Recorder wraps an exporter and appends an entry to the export log after
// every document it writes. A failure to record is logged, not returned,
// since the document itself was written.
type Recorder struct {
	next    PathExporter
	history *FileHistory
	dir     string
	clock   domain.Clock
	log     *zap.Logger
}

func NewRecorder(next PathExporter, dir string, clock domain.Clock, log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{next: next, history: New(), dir: dir, clock: clock, log: log.Named("history")}
}

func (r *Recorder) Path(title string) string { return r.next.Path(title) }

func (r *Recorder) PrintDocument(view domain.DocumentView, title string, onComplete func()) error {
	written := false
	if err := r.next.PrintDocument(view, title, func() { written = true }); err != nil {
		return err
	}
	if !written {
		return nil
	}

	entry := domain.ExportEntry{
		Timestamp: r.clock.Now().Format(time.RFC3339),
		Title:     title,
		Path:      r.next.Path(title),
		Total:     view.Total,
		Items:     len(view.Rows),
	}
	if err := r.history.Save(r.dir, entry); err != nil {
		r.log.Warn("recording export failed", zap.String("title", title), zap.Error(err))
	}

	if onComplete != nil {
		onComplete()
	}
	return nil
}
