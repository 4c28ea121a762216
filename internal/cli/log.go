// Package cli implements the mirrordemo command-line interface.
//
// # Commands
//
//   - render: mirror a scene's image element and write a PNG preview
//   - mesh: print the mirrored mesh, optionally as packed GPU buffers
//   - size: print the native layout size of a sprite for a mirror mode
//
// All commands support --verbose (-v) for debug-level logging, which also
// enables the mirror library's own diagnostics.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"

	"github.com/gogpu/mirror"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// installLibraryLogger routes the mirror package's slog output through l.
func installLibraryLogger(l *log.Logger) {
	mirror.SetLogger(slog.New(l))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
