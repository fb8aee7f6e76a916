package app

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/app/internal/logutil"
)

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := logutil.Nop()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for app and all its sub-packages.
// By default, app produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by app:
//   - [slog.LevelDebug]: internal diagnostics (dispatch decisions, surface churn)
//   - [slog.LevelInfo]: important lifecycle events (GPU adapter selected)
//   - [slog.LevelWarn]: non-fatal issues (skipped frames, release errors)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	app.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = logutil.Nop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by app. Run passes it into the
// gfx and platform layers so the whole host shares one configuration.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
