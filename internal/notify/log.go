package notify

// Logger is the subset of the structured logger used by Log.
type Logger interface {
	Info(msg string, args ...any)
}

// Log forwards notification lines to a structured logger at info level.
type Log struct {
	logger Logger
}

// NewLog creates a notifier that logs each line as a "notification" entry.
func NewLog(logger Logger) *Log {
	return &Log{logger: logger}
}

// Notify logs message.
func (l *Log) Notify(message string) {
	if l.logger == nil {
		return
	}
	l.logger.Info("notification", "message", message)
}
