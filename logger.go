package ggstyle

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so slog never
// builds the record in the first place.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// silentLogger is what Logger returns until SetLogger installs another one.
func silentLogger() *slog.Logger { return slog.New(nopHandler{}) }

// activeLogger is read on every Debug call from compiled style functions,
// which may run on many goroutines at once.
var activeLogger atomic.Pointer[slog.Logger]

func init() {
	activeLogger.Store(silentLogger())
}

// SetLogger routes diagnostics from ggstyle and ggcontext to l.
// Nothing is logged until it is called; SetLogger(nil) silences the
// library again. It may be called while styles are being compiled or
// applied.
//
// Log levels used by ggstyle:
//   - [slog.LevelDebug]: colour stops kept as strings because they did not
//     parse, canvas assignments ggcontext ignored, and style documents that
//     were not JSON objects
//
// No records are emitted above debug level: every condition above is
// recoverable and the caller already receives errors for the rest.
//
// Example:
//
//	// Surface pass-through and ignored values while authoring a style:
//	ggstyle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger()
	}
	activeLogger.Store(l)
}

// Logger returns the logger installed by SetLogger, or a silent one.
// ggcontext logs through it so a single SetLogger call covers both
// packages.
func Logger() *slog.Logger {
	return activeLogger.Load()
}
