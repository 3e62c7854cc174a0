// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Pages
	OpPageLoad    Op = "load page"
	OpPageParse   Op = "read page controls"
	OpPanelToggle Op = "toggle panel"

	// Playback
	OpTrackDownload Op = "download track"
	OpPlaybackStart Op = "start playback"
	OpPlaybackPause Op = "pause playback"
	OpCoverDownload Op = "download cover"

	// Widgets
	OpWeatherFetch Op = "fetch weather"

	// State
	OpStateLoad    Op = "load saved state"
	OpHistorySave  Op = "save history"
	OpCachePrune   Op = "prune cache"
	OpInitialize   Op = "initialize application"
	OpMPRISStart   Op = "start media key service"
	OpNotifyRaise  Op = "show notification"
	OpConfigLoad   Op = "load configuration"
	OpServerVerify Op = "reach server"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message naming the object of the operation.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
