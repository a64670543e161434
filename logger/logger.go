// Package logger holds the structured logger shared by every pixelkit package.
//
// The library is silent by default. Callers opt in with Set, typically from a
// command's setup code.
package logger

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNop() *slog.Logger { return slog.New(nopHandler{}) }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(newNop())
}

// Set installs l as the logger for all pixelkit packages.
// Passing nil restores the silent default.
//
// Library packages log at [slog.LevelDebug] only: fallback tiers taken and
// rejected enumeration definitions.
//
// Example:
//
//	logger.Set(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func Set(l *slog.Logger) {
	if l == nil {
		l = newNop()
	}
	current.Store(l)
}

// Get returns the active logger. It is never nil.
func Get() *slog.Logger {
	return current.Load()
}
