// Package keymap defines key bindings and action dispatch for Moo pages.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionNone Action = ""

	// Host actions
	ActionQuit   Action = "quit"
	ActionSearch Action = "search"
	ActionKeys   Action = "keys" // key table overlay

	// Navigation actions
	ActionNext        Action = "next"
	ActionPrev        Action = "prev"
	ActionRandom      Action = "random"       // server-chosen resource
	ActionRandomTrack Action = "random_track" // rtrack
	ActionRandomAlbum Action = "random_album" // ralbum
	ActionTrack       Action = "track"        // digit keys, see Dispatch.Track

	// Playback actions
	ActionPlayPause Action = "play_pause"

	// Panel actions
	ActionTogglePanel Action = "toggle_panel" // see Dispatch.Panel

	// Page actions
	ActionCovers  Action = "covers"
	ActionIndex   Action = "index"
	ActionRepeat  Action = "repeat"
	ActionShuffle Action = "shuffle"
	ActionDark    Action = "dark"
)
