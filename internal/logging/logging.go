// Package logging builds the slog logger used across bubblers.
package logging

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w. Only warnings and errors are shown
// unless debug is set.
func New(w io.Writer, prefix string, debug bool) *slog.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: false,
	})
	return slog.New(handler)
}

// Init creates a logger with New and installs it as the slog default
func Init(w io.Writer, prefix string, debug bool) *slog.Logger {
	logger := New(w, prefix, debug)
	slog.SetDefault(logger)
	return logger
}
