package audit

import (
	"context"
	"sync"
	"time"

	"github.com/nerrad567/gray-logic-hub/internal/device"
	"github.com/nerrad567/gray-logic-hub/internal/hub"
)

const (
	// defaultWriteTimeout bounds a single audit insert.
	defaultWriteTimeout = 2 * time.Second

	// DefaultQueueSize is the number of entries buffered ahead of the writer.
	DefaultQueueSize = 256
)

// Logger defines the logging interface used by the Recorder.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Recorder writes every hub dispatch to a Repository.
//
// ObserveDispatch only builds the entry and queues it; a single goroutine
// performs the inserts in dispatch order. Entries are dropped, with an
// error log, when the queue is full or the Recorder is closed.
type Recorder struct {
	repo      Repository
	siteID    string
	source    string
	snapshot  func() map[string]device.State
	logger    Logger
	queueSize int

	mu     sync.RWMutex // guards closed and sends on queue
	closed bool
	queue  chan queued
	done   chan struct{}
}

// queued is either an entry to insert or a flush marker.
type queued struct {
	entry   *AuditLog
	flushed chan struct{}
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithSource sets the source column (default "hub").
func WithSource(source string) RecorderOption {
	return func(r *Recorder) {
		if source != "" {
			r.source = source
		}
	}
}

// WithSnapshot stores the device states returned by fn in each entry's
// details under "devices".
func WithSnapshot(fn func() map[string]device.State) RecorderOption {
	return func(r *Recorder) { r.snapshot = fn }
}

// WithLogger sets the logger used for write failures.
func WithLogger(l Logger) RecorderOption {
	return func(r *Recorder) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithQueueSize sets how many entries may wait for the writer.
func WithQueueSize(n int) RecorderOption {
	return func(r *Recorder) {
		if n > 0 {
			r.queueSize = n
		}
	}
}

// NewRecorder creates a Recorder for one site and starts its writer.
// Call Close to flush pending entries and stop the writer.
func NewRecorder(repo Repository, siteID string, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		repo:      repo,
		siteID:    siteID,
		source:    "hub",
		logger:    noopLogger{},
		queueSize: DefaultQueueSize,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.queue = make(chan queued, r.queueSize)
	go r.run()
	return r
}

// ObserveDispatch implements hub.Observer. It never blocks on the
// repository.
func (r *Recorder) ObserveDispatch(d hub.Dispatch) {
	entry := &AuditLog{
		SiteID:    r.siteID,
		Op:        string(d.Op),
		Action:    d.Action,
		Source:    r.source,
		CreatedAt: d.At,
	}
	if d.Op != hub.OpUndo {
		slot := d.Slot
		entry.Slot = &slot
	}
	if r.snapshot != nil {
		entry.Details = map[string]any{"devices": r.snapshot()}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		r.logger.Error("audit entry dropped", "reason", "recorder closed", "op", entry.Op, "action", entry.Action)
		return
	}
	select {
	case r.queue <- queued{entry: entry}:
	default:
		r.logger.Error("audit entry dropped", "reason", "queue full", "op", entry.Op, "action", entry.Action)
	}
}

// Flush blocks until every entry queued before the call has been written,
// or ctx is done.
func (r *Recorder) Flush(ctx context.Context) error {
	flushed := make(chan struct{})

	r.mu.RLock()
	if r.closed {
		r.mu.RUnlock()
		return nil
	}
	select {
	case r.queue <- queued{flushed: flushed}:
		r.mu.RUnlock()
	case <-ctx.Done():
		r.mu.RUnlock()
		return ctx.Err()
	}

	select {
	case <-flushed:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close writes any queued entries and stops the writer. It is safe to
// call more than once.
func (r *Recorder) Close() error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()

	<-r.done
	return nil
}

// run drains the queue in order until it is closed.
func (r *Recorder) run() {
	defer close(r.done)
	for q := range r.queue {
		if q.flushed != nil {
			close(q.flushed)
			continue
		}
		r.write(q.entry)
	}
}

// write inserts one entry, logging failures.
func (r *Recorder) write(entry *AuditLog) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultWriteTimeout)
	defer cancel()

	if err := r.repo.Create(ctx, entry); err != nil {
		r.logger.Error("audit write failed", "op", entry.Op, "action", entry.Action, "error", err)
		return
	}
	r.logger.Debug("dispatch audited", "id", entry.ID, "op", entry.Op, "action", entry.Action)
}
