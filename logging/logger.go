// Package logging wraps a third-party leveled logger behind a small
// interface so the rest of the tree depends on the interface, not the
// concrete library.
//
// Package logging - logger.go
// Grounded on FollowTheProcess-spok's logger package (spok has the
// same need: DEBUG-only tracing behind a --verbose/--debug flag,
// something go-mix itself never carries). The interpreter's debug traces
// never touch stdout/stderr's exact-diagnostic-format contract — they
// go through this logger, entirely separate from the diagnostics sink.
package logging

import "go.uber.org/zap"

// Logger is the interface the interpreter and CLI depend on.
type Logger interface {
	// Debug emits a debug-level line; a no-op implementation may
	// simply discard it.
	Debug(format string, args ...any)
	// Sync flushes any buffered log output.
	Sync() error
}

// ZapLogger is a Logger backed by go.uber.org/zap.
type ZapLogger struct {
	inner *zap.SugaredLogger
}

// New builds a ZapLogger. When debug is false, Debug calls are
// suppressed by the configured level rather than by the caller.
func New(debug bool) (*ZapLogger, error) {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	z, err := cfg.Build(zap.IncreaseLevel(level))
	if err != nil {
		return nil, err
	}
	return &ZapLogger{inner: z.Sugar()}, nil
}

func (z *ZapLogger) Debug(format string, args ...any) {
	z.inner.Debugf(format, args...)
}

func (z *ZapLogger) Sync() error {
	return z.inner.Sync()
}

// Noop discards every log line; used by tests.
type Noop struct{}

func (Noop) Debug(string, ...any) {}
func (Noop) Sync() error          { return nil }
