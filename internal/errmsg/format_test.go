package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{"nil error returns empty string", OpPageLoad, nil, ""},
		{"page load", OpPageLoad, errors.New("connection refused"), "Failed to load page: connection refused"},
		{"panel toggle", OpPanelToggle, errors.New("no such element"), "Failed to toggle panel: no such element"},
		{"playback", OpPlaybackStart, errors.New("no audio device"), "Failed to start playback: no audio device"},
		{"weather", OpWeatherFetch, errors.New("timeout"), "Failed to fetch weather: timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, got, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{"nil error", OpPageLoad, "/random", nil, ""},
		{"with context", OpPageLoad, "/album/a", errors.New("not found"), "Failed to load page '/album/a': not found"},
		{"empty context falls back", OpTrackDownload, "", errors.New("eof"), "Failed to download track: eof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWith(tt.op, tt.context, tt.err); got != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", got, tt.expected)
			}
		})
	}
}
