//go:build windows

package stderr

import "log/slog"

// Messages never receives on Windows.
var Messages = make(chan string)

// Start does nothing: the Windows audio backend does not write to stderr.
func Start(*slog.Logger) error { return nil }

// Stop does nothing.
func Stop() {}
