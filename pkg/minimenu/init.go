// Package minimenu is a selection-list engine for small pixel displays.
//
// A Menu turns a fixed, heterogeneous collection of entries (navigation
// links, toggles and enum selects, section headers) plus one raw input
// sample per tick into a selection index, at most one application event,
// and a redraw of the title bar, the list and an animated selection
// indicator. Rendering goes through canvas.Canvas so the same menu draws to
// an SDL window (sdlview) or a software image (raster).
package minimenu

import (
	"log/slog"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first log line to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel sets the level of the engine's own logger, which is
// Error by default (Debug when MINIMENU_DEBUG is set).
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// CloseLogger flushes and closes the log file, if one is open.
func CloseLogger() {
	internal.CloseLogger()
}
