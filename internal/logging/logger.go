// Package logging provides the leveled logger consumed by the rest of
// govel. The library treats logging as an external collaborator: callers
// may supply their own Logger, or fall back to the default slog-backed
// implementation.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Logger is the leveled logger interface consumed throughout govel.
// Implementations must be safe for concurrent use: the event handler and
// any number of producer goroutines may log simultaneously.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

// slogLogger adapts a *slog.Logger to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

// New creates a Logger with JSON output to stdout, scoped with the
// supplied reporting-entity name and source id so every line is
// self-describing in multi-VNF deployments.
func New(reportingEntityName, sourceID string) Logger {
	return NewWithWriter(os.Stdout, reportingEntityName, sourceID)
}

// NewWithWriter creates a Logger writing JSON lines to w. Useful for tests
// or redirecting output to a file/collector sidecar.
func NewWithWriter(w io.Writer, reportingEntityName, sourceID string) Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(handler).With(
		"reporting_entity_name", reportingEntityName,
		"source_id", sourceID,
	)
	return &slogLogger{logger: logger}
}

func (l *slogLogger) Debug(msg string, kv ...any) { l.logger.Debug(msg, kv...) }
func (l *slogLogger) Info(msg string, kv ...any)  { l.logger.Info(msg, kv...) }
func (l *slogLogger) Warn(msg string, kv ...any)  { l.logger.Warn(msg, kv...) }
func (l *slogLogger) Error(msg string, kv ...any) { l.logger.Error(msg, kv...) }

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Noop returns a Logger that discards everything. Used as the default
// before a caller has configured one, and in tests.
func Noop() Logger { return noopLogger{} }

var (
	globalMu     sync.RWMutex
	globalLogger Logger
)

// SetGlobal sets the process-wide default Logger, used by code paths that
// have no directly injected Logger (e.g. package-level helpers).
func SetGlobal(l Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = l
}

// Global returns the process-wide default Logger, or a no-op Logger if
// none has been set.
func Global() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger != nil {
		return globalLogger
	}
	return Noop()
}
