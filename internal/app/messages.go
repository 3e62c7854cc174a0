// internal/app/messages.go
package app

import (
	"time"

	"github.com/llehouerou/moo/internal/client"
	"github.com/llehouerou/moo/internal/playback"
)

// PageLoadedMsg is sent when a page fetch completes. Seq tells a current
// load from a superseded one.
type PageLoadedMsg struct {
	Seq  int
	Path string
	Page *client.Page
	Err  error
}

// TrackReadyMsg is sent when the page's audio is in the cache.
type TrackReadyMsg struct {
	Seq  int // page the track belongs to
	Path string
	Err  error
}

// CoverReadyMsg is sent when the album cover is in the cache.
type CoverReadyMsg struct {
	Seq  int
	Path string
	Err  error
}

// CoverPreparedMsg carries the terminal sequence that uploads the cover.
type CoverPreparedMsg struct {
	Seq      int
	Sequence string
	Err      error
}

// TrackFinishedMsg is sent when the audio plays to its end. Seq is the page
// the finished track was started on.
type TrackFinishedMsg struct {
	Seq int
}

// GlowMsg performs a deferred glow step on the page it was scheduled for.
type GlowMsg struct {
	Seq  int
	Step playback.GlowStep
}

// ClockTickMsg re-renders the clock and the progress bar.
type ClockTickMsg time.Time

// WeatherMsg carries the weather summary, fetched once.
type WeatherMsg struct {
	Text string
	Err  error
}

// CachePrunedMsg reports a cache prune.
type CachePrunedMsg struct {
	Freed int64
	Desc  string
	Err   error
}

// MPRISKeyMsg is a key code sent by the desktop media keys.
type MPRISKeyMsg struct {
	Code string
}

// StderrMsg is a line captured from the audio backend's stderr.
type StderrMsg struct {
	Line string
}
