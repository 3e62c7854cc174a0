package keymap

import (
	"github.com/llehouerou/moo/internal/layout"
	"github.com/llehouerou/moo/internal/panel"
)

// Binding maps DOM KeyboardEvent.code values to an action.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "host", "navigation", "playback", "panels", "tracks", "page"

	Track          int    // ActionTrack target
	Panel          string // ActionTogglePanel target element id
	Shown          bool   // the panel starts visible
	PreventDefault bool
}

// Bindings contains all key bindings, used for dispatch and help generation.
var Bindings = []Binding{
	// Host
	{Action: ActionQuit, Keys: []string{"KeyQ"}, Description: "Quit", Context: "host"},
	{Action: ActionSearch, Keys: []string{"Slash"}, Description: "Search", Context: "host"},
	{Action: ActionKeys, Keys: []string{"F1"}, Description: "Key table", Context: "host"},

	// Navigation
	{Action: ActionPrev, Keys: []string{"ArrowUp", "ArrowLeft"}, Description: "Previous track", Context: "navigation", PreventDefault: true},
	{Action: ActionNext, Keys: []string{"ArrowDown", "ArrowRight"}, Description: "Next track", Context: "navigation", PreventDefault: true},
	{Action: ActionNext, Keys: []string{"KeyN"}, Description: "Next track", Context: "navigation"},
	{Action: ActionPrev, Keys: []string{"KeyP"}, Description: "Previous track", Context: "navigation"},
	{Action: ActionRandom, Keys: []string{"KeyR"}, Description: "Random album", Context: "navigation"},
	{Action: ActionRandomTrack, Keys: []string{"KeyT"}, Description: "Random track", Context: "navigation"},

	// Playback
	{Action: ActionPlayPause, Keys: []string{"Space"}, Description: "Play/pause", Context: "playback", PreventDefault: true},

	// Panels
	{Action: ActionTogglePanel, Keys: []string{"KeyC"}, Description: "Covers", Context: "panels", Panel: panel.Covers},
	{Action: ActionTogglePanel, Keys: []string{"KeyD"}, Description: "Metadata", Context: "panels", Panel: panel.Metadata},
	{Action: ActionTogglePanel, Keys: []string{"KeyG"}, Description: "Tags", Context: "panels", Panel: panel.Tags},
	{Action: ActionTogglePanel, Keys: []string{"KeyH"}, Description: "Help", Context: "panels", Panel: panel.Help},
	{Action: ActionTogglePanel, Keys: []string{"KeyI"}, Description: "Index", Context: "panels", Panel: panel.Index},
	{Action: ActionTogglePanel, Keys: []string{"KeyL"}, Description: "Classical", Context: "panels", Panel: panel.Classical},
	{Action: ActionTogglePanel, Keys: []string{"KeyM"}, Description: "Related", Context: "panels", Panel: panel.Related},
	{Action: ActionTogglePanel, Keys: []string{"KeyV"}, Description: "Album cover", Context: "panels", Panel: layout.CoverID, Shown: true},

	// Tracks
	{Action: ActionTrack, Keys: []string{"Digit1"}, Description: "Track 1", Context: "tracks", Track: 1},
	{Action: ActionTrack, Keys: []string{"Digit2"}, Description: "Track 2", Context: "tracks", Track: 2},
	{Action: ActionTrack, Keys: []string{"Digit3"}, Description: "Track 3", Context: "tracks", Track: 3},
	{Action: ActionTrack, Keys: []string{"Digit4"}, Description: "Track 4", Context: "tracks", Track: 4},
	{Action: ActionTrack, Keys: []string{"Digit5"}, Description: "Track 5", Context: "tracks", Track: 5},
	{Action: ActionTrack, Keys: []string{"Digit6"}, Description: "Track 6", Context: "tracks", Track: 6},
	{Action: ActionTrack, Keys: []string{"Digit7"}, Description: "Track 7", Context: "tracks", Track: 7},
	{Action: ActionTrack, Keys: []string{"Digit8"}, Description: "Track 8", Context: "tracks", Track: 8},
	{Action: ActionTrack, Keys: []string{"Digit9"}, Description: "Track 9", Context: "tracks", Track: 9},
	{Action: ActionTrack, Keys: []string{"Digit0"}, Description: "Track 10", Context: "tracks", Track: 10},

	// Page
	{Action: ActionRandomAlbum, Keys: []string{"KeyA"}, Description: "Suggested album", Context: "page"},
	{Action: ActionCovers, Keys: []string{"KeyO"}, Description: "Covers page", Context: "page"},
	{Action: ActionIndex, Keys: []string{"Home"}, Description: "Index page", Context: "page"},
	{Action: ActionRepeat, Keys: []string{"KeyE"}, Description: "Repeat playlist", Context: "page"},
	{Action: ActionShuffle, Keys: []string{"KeyS"}, Description: "Shuffle playlist", Context: "page"},
	{Action: ActionDark, Keys: []string{"KeyB"}, Description: "Dark mode", Context: "page"},
}

// Contexts lists binding contexts in help order.
var Contexts = []string{"navigation", "playback", "tracks", "panels", "page", "host"}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
