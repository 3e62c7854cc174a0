package player

import (
	"time"

	"github.com/llehouerou/moo/internal/playback"
	"github.com/llehouerou/moo/internal/tags"
)

// Interface is the audio element the app drives. It is also the page's
// playback.Audio.
type Interface interface {
	playback.Audio

	Load(path string, autoplay bool) error
	Stop()
	State() State
	TrackInfo() *tags.Tag
	Position() time.Duration
	Duration() time.Duration
	SetVolume(level float64)
	Volume() float64
	FinishedChan() <-chan struct{}
}

var _ Interface = (*Player)(nil)
