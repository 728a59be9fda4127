package app

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger for diagnostics. Without verbose only
// warnings and errors are printed, so stdout stays a clean PEM stream.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// discardLogger is used when a Generator is built without a logger.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
