package application

import (
	"sync"

	"go.uber.org/zap"

	"github.com/tripinvoice/tripinvoice/internal/domain"
)

const (
	msgRowAdded    = "Vehicle row added"
	msgRowRemoved  = "Vehicle row removed"
	msgMinimumRows = "At least one vehicle is required"
)

// InvoiceStore owns the session's InvoiceRecord. Every mutation commits a
// fresh record and notifies subscribers before returning. Mutations are
// serialized; subscribers must not mutate the store.
type InvoiceStore struct {
	op       sync.Mutex // held for a whole mutation including notification
	mu       sync.Mutex // guards record, revision and listeners
	record   domain.InvoiceRecord
	revision uint64
	ids      domain.IDGenerator
	notifier domain.Notifier
	log      *zap.Logger

	listeners []listener
	nextKey   int
}

type listener struct {
	key int
	fn  func(domain.InvoiceRecord)
}

func NewInvoiceStore(
	initial domain.InvoiceRecord,
	ids domain.IDGenerator,
	notifier domain.Notifier,
	log *zap.Logger,
) *InvoiceStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &InvoiceStore{
		record:   initial,
		ids:      ids,
		notifier: notifier,
		log:      log.Named("store"),
	}
}

// Snapshot returns the current record. The returned value must be treated
// as read-only; its line item slice is shared with the store.
func (s *InvoiceStore) Snapshot() domain.InvoiceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record
}

// Revision increases by one on every committed change.
func (s *InvoiceStore) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// Subscribe registers fn to run after every committed change. fn runs inside
// the mutating call, before it returns; it may read the store through
// Snapshot and Revision but must not call SetField, AddLineItem,
// RemoveLineItem or UpdateLineItem, which would deadlock.
func (s *InvoiceStore) Subscribe(fn func(domain.InvoiceRecord)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := s.nextKey
	s.nextKey++
	s.listeners = append(s.listeners, listener{key: key, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.key == key {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// SetField replaces one top-level field. Unknown fields are ignored.
func (s *InvoiceStore) SetField(field domain.InvoiceField, value string) {
	s.op.Lock()
	defer s.op.Unlock()

	s.mu.Lock()
	next, ok := s.record.With(field, value)
	if !ok {
		s.mu.Unlock()
		s.log.Debug("ignoring unknown field", zap.String("field", string(field)))
		return
	}
	s.commitLocked(next)
	s.log.Debug("field set", zap.String("field", string(field)), zap.Int("len", len(value)))
	s.publish(next)
}

// AddLineItem appends an empty line item and returns its id.
func (s *InvoiceStore) AddLineItem() string {
	s.op.Lock()
	defer s.op.Unlock()

	s.mu.Lock()
	id := s.ids.NewID()
	next := s.record
	items := make([]domain.LineItem, len(s.record.LineItems), len(s.record.LineItems)+1)
	copy(items, s.record.LineItems)
	next.LineItems = append(items, domain.LineItem{ID: id})
	s.commitLocked(next)
	s.log.Debug("line item added", zap.String("id", id), zap.Int("count", len(next.LineItems)))
	s.publish(next)
	s.notifySuccess(msgRowAdded)
	return id
}

// RemoveLineItem deletes the line item with the given id. Removing the last
// remaining item is rejected and reported as a warning; an unknown id is
// ignored.
func (s *InvoiceStore) RemoveLineItem(id string) error {
	s.op.Lock()
	defer s.op.Unlock()

	s.mu.Lock()
	idx := s.record.IndexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		s.log.Debug("ignoring remove of unknown line item", zap.String("id", id))
		return nil
	}
	if len(s.record.LineItems) == 1 {
		s.mu.Unlock()
		s.log.Info("remove rejected", zap.String("id", id), zap.String("reason", domain.ReasonMinimumOneItem))
		s.notifyWarning(msgMinimumRows)
		return &domain.RejectedError{Reason: domain.ReasonMinimumOneItem}
	}
	next := s.record
	items := make([]domain.LineItem, 0, len(s.record.LineItems)-1)
	items = append(items, s.record.LineItems[:idx]...)
	next.LineItems = append(items, s.record.LineItems[idx+1:]...)
	s.commitLocked(next)
	s.log.Debug("line item removed", zap.String("id", id), zap.Int("count", len(next.LineItems)))
	s.publish(next)
	s.notifySuccess(msgRowRemoved)
	return nil
}

// UpdateLineItem replaces one field of the line item with the given id.
// Other items are carried over untouched. Unknown ids and fields are ignored.
func (s *InvoiceStore) UpdateLineItem(id string, field domain.LineItemField, value string) {
	s.op.Lock()
	defer s.op.Unlock()

	s.mu.Lock()
	idx := s.record.IndexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		s.log.Debug("ignoring update of unknown line item", zap.String("id", id))
		return
	}
	updated, ok := s.record.LineItems[idx].With(field, value)
	if !ok {
		s.mu.Unlock()
		s.log.Debug("ignoring unknown line item field", zap.String("field", string(field)))
		return
	}
	next := s.record
	items := make([]domain.LineItem, len(s.record.LineItems))
	copy(items, s.record.LineItems)
	items[idx] = updated
	next.LineItems = items
	s.commitLocked(next)
	s.log.Debug("line item updated", zap.String("id", id), zap.String("field", string(field)))
	s.publish(next)
}

// commitLocked installs next and releases the lock taken by the caller.
func (s *InvoiceStore) commitLocked(next domain.InvoiceRecord) {
	s.record = next
	s.revision++
	s.mu.Unlock()
}

func (s *InvoiceStore) publish(rec domain.InvoiceRecord) {
	s.mu.Lock()
	ls := make([]listener, len(s.listeners))
	copy(ls, s.listeners)
	s.mu.Unlock()
	for _, l := range ls {
		l.fn(rec)
	}
}

func (s *InvoiceStore) notifySuccess(msg string) {
	if s.notifier != nil {
		s.notifier.Success(msg)
	}
}

func (s *InvoiceStore) notifyWarning(msg string) {
	if s.notifier != nil {
		s.notifier.Warning(msg)
	}
}
