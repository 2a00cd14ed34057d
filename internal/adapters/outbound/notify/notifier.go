package notify

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/tui"
)

// Writer implements domain.Notifier by printing one line per message.
type Writer struct {
	mu  sync.Mutex
	w   io.Writer
	log *zap.Logger
}

func NewWriter(w io.Writer, log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{w: w, log: log.Named("notify")}
}

func (n *Writer) Success(msg string) { n.emit(tui.Toast{Kind: tui.ToastSuccess, Message: msg}) }
func (n *Writer) Warning(msg string) { n.emit(tui.Toast{Kind: tui.ToastWarning, Message: msg}) }

func (n *Writer) emit(t tui.Toast) {
	n.log.Info("notification", zap.String("kind", string(t.Kind)), zap.String("message", t.Message))
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.w, tui.RenderToastLine(t))
}

// Queue implements domain.Notifier by holding messages until they are
// drained, for surfaces that show them on their own schedule.
type Queue struct {
	mu     sync.Mutex
	toasts []tui.Toast
	log    *zap.Logger
}

func NewQueue(log *zap.Logger) *Queue {
	if log == nil {
		log = zap.NewNop()
	}
	return &Queue{log: log.Named("notify")}
}

func (q *Queue) Success(msg string) { q.push(tui.Toast{Kind: tui.ToastSuccess, Message: msg}) }
func (q *Queue) Warning(msg string) { q.push(tui.Toast{Kind: tui.ToastWarning, Message: msg}) }

func (q *Queue) push(t tui.Toast) {
	q.log.Debug("notification", zap.String("kind", string(t.Kind)), zap.String("message", t.Message))
	q.mu.Lock()
	q.toasts = append(q.toasts, t)
	q.mu.Unlock()
}

// Drain returns the pending messages in arrival order and clears the queue.
func (q *Queue) Drain() []tui.Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.toasts
	q.toasts = nil
	return out
}
