package player

import (
	"time"

	"github.com/llehouerou/moo/internal/tags"
)

// Mock is a test double for Player.
type Mock struct {
	state      State
	path       string
	position   time.Duration
	duration   time.Duration
	volume     float64
	trackInfo  *tags.Tag
	loadErr    error
	loadCalls  []string
	finishedCh chan struct{}
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:      Stopped,
		volume:     1,
		finishedCh: make(chan struct{}, 1),
	}
}

func (m *Mock) Load(path string, autoplay bool) error {
	m.loadCalls = append(m.loadCalls, path)
	if m.loadErr != nil {
		return m.loadErr
	}
	m.path = path
	m.trackInfo = &tags.Tag{Path: path, Title: path}
	if autoplay {
		m.state = Playing
	} else {
		m.state = Paused
	}
	return nil
}

func (m *Mock) Play() error {
	if m.path == "" {
		return ErrNoTrack
	}
	m.state = Playing
	return nil
}

func (m *Mock) Pause() error {
	if m.path == "" {
		return ErrNoTrack
	}
	if m.state == Playing {
		m.state = Paused
	}
	return nil
}

func (m *Mock) Paused() bool { return m.state != Playing }

func (m *Mock) Stop() {
	m.state = Stopped
	m.path = ""
	m.trackInfo = nil
}

func (m *Mock) State() State { return m.state }

func (m *Mock) TrackInfo() *tags.Tag { return m.trackInfo }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) SetVolume(level float64) { m.volume = max(0, min(1, level)) }

func (m *Mock) Volume() float64 { return m.volume }

func (m *Mock) FinishedChan() <-chan struct{} {
	return m.finishedCh
}

// Test helpers

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetLoadError(err error) { m.loadErr = err }

func (m *Mock) LoadCalls() []string { return m.loadCalls }

func (m *Mock) SetTrackInfo(info *tags.Tag) { m.trackInfo = info }

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

// SimulateFinished simulates a track playing to its end.
func (m *Mock) SimulateFinished() {
	m.state = Stopped
	select {
	case m.finishedCh <- struct{}{}:
	default:
	}
}

var _ Interface = (*Mock)(nil)
