package application_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/tripinvoice/tripinvoice/internal/application"
	"github.com/tripinvoice/tripinvoice/internal/domain"
)

var testNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return testNow }

// seqIDs hands out row-1, row-2, ...
type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("row-%d", s.n)
}

type event struct {
	kind string
	msg  string
}

// recorder captures notifications and store changes in one ordered log.
type recorder struct {
	events []event
}

func (r *recorder) Success(msg string) { r.events = append(r.events, event{"success", msg}) }
func (r *recorder) Warning(msg string) { r.events = append(r.events, event{"warning", msg}) }

func (r *recorder) changed(domain.InvoiceRecord) { r.events = append(r.events, event{kind: "change"}) }

func (r *recorder) kinds() []string {
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.kind)
	}
	return out
}

type fakeExporter struct {
	views  []domain.DocumentView
	titles []string
	err    error
}

func (f *fakeExporter) PrintDocument(view domain.DocumentView, title string, onComplete func()) error {
	if f.err != nil {
		return f.err
	}
	f.views = append(f.views, view)
	f.titles = append(f.titles, title)
	onComplete()
	return nil
}

var errDiskFull = errors.New("disk full")

type viewport bool

func (v viewport) IsCompact() bool { return bool(v) }

func newStore(n *recorder) *application.InvoiceStore {
	ids := &seqIDs{}
	initial := domain.NewInvoiceRecord(fixedClock{}, ids, domain.DefaultConfig())
	return application.NewInvoiceStore(initial, ids, n, nil)
}

func newSession(cfg domain.ProjectConfig, kind application.SurfaceKind) (*application.Session, *recorder, *fakeExporter) {
	rec := &recorder{}
	exp := &fakeExporter{}
	s := application.NewSession(cfg, application.SessionDeps{
		Clock:    fixedClock{},
		IDs:      &seqIDs{},
		Notifier: rec,
		Exporter: exp,
	}, kind)
	return s, rec, exp
}

func authoredConfig() domain.ProjectConfig {
	cfg := domain.DefaultConfig()
	cfg.SubtotalPolicy = domain.PolicyAuthored
	return cfg
}
