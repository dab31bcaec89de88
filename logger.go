package glxhack

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so [Apply] never
// renders attribute lists while logging is off.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var silent = slog.New(discard{})

// logger is swapped atomically: the driver installs its trace sink once at
// load time, while contexts may be created from any thread.
var logger atomic.Pointer[slog.Logger]

// SetLogger routes glxhack diagnostics to l. Policy decisions are logged at
// debug level, applied environment overrides at info, and unrecognized
// configuration or invalid driver input at warn. A nil l silences logging,
// which is also the initial state.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger installed with [SetLogger].
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return silent
}
