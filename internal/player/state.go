package player

// State is the player's transport state.
//
//	Stopped --Load(autoplay)--> Playing <--Play/Pause--> Paused
//	Stopped --Load-----------> Paused
//
// Stop returns to Stopped from anywhere. A finished track also ends in
// Stopped; Play on a stopped player restarts the loaded track.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a track is loaded and not finished.
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
