// Package logging sets up the JSON log file. The terminal belongs to the
// UI, so nothing is logged to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const logFile = "moo/moo.log"

// Open creates the default logger writing to the XDG state directory.
// The returned closer flushes and closes the file.
func Open(debug bool) (*slog.Logger, io.Closer, error) {
	path, err := xdg.StateFile(logFile)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve log path: %w", err)
	}
	return OpenPath(path, debug)
}

// OpenPath creates a logger appending to path.
func OpenPath(path string, debug bool) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return New(f, debug), f, nil
}

// New creates a JSON logger on w.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
