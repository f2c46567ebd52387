package hub

import (
	"time"

	"github.com/nerrad567/gray-logic-hub/internal/device"
)

// Logger defines the logging interface used by the Hub.
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

// Option configures a Hub.
type Option func(*Hub)

// WithNotifier sets the sink used by PublishStatus.
func WithNotifier(n device.Notifier) Option {
	return func(h *Hub) {
		if n != nil {
			h.notifier = n
		}
	}
}

// WithObserver sets the dispatch observer. Use Observers to attach several.
func WithObserver(o Observer) Option {
	return func(h *Hub) {
		if o != nil {
			h.observer = o
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(h *Hub) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithClock overrides the time source used to stamp dispatches.
func WithClock(now func() time.Time) Option {
	return func(h *Hub) {
		if now != nil {
			h.now = now
		}
	}
}
