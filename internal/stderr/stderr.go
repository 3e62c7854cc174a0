//go:build !windows

// Package stderr captures output that C audio libraries (ALSA, PulseAudio)
// write directly to file descriptor 2, so it lands in the log instead of
// over the terminal UI.
package stderr

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

// Messages receives captured lines for the status line. Lines are dropped
// when nobody is reading.
var Messages = make(chan string, 100)

var (
	mu    sync.Mutex
	saved = -1 // duplicate of the terminal's fd 2 while capturing
	pipe  *os.File
)

// Start points fd 2 at a pipe. Each captured line is logged at warn level
// and offered on Messages. It must run before the speaker is opened.
func Start(logger *slog.Logger) error {
	mu.Lock()
	defer mu.Unlock()
	if saved >= 0 {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}

	r, w, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("capture stderr: %w", err)
	}
	fd := int(os.Stderr.Fd())
	dup, err := unix.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return fmt.Errorf("capture stderr: %w", err)
	}
	if err := unix.Dup2(int(w.Fd()), fd); err != nil {
		unix.Close(dup)
		r.Close()
		w.Close()
		return fmt.Errorf("capture stderr: %w", err)
	}
	// fd 2 now holds the write end
	w.Close()

	saved = dup
	pipe = r
	go forward(r, logger)
	return nil
}

func forward(r io.Reader, logger *slog.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		logger.Warn("captured stderr", "line", line)
		select {
		case Messages <- line:
		default:
		}
	}
}

// Stop gives fd 2 back to the terminal.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	if saved < 0 {
		return
	}
	_ = unix.Dup2(saved, int(os.Stderr.Fd()))
	_ = unix.Close(saved)
	pipe.Close()
	saved = -1
	pipe = nil
}
