// Package player is the page's audio element: it plays one downloaded
// track at a time through the system speaker.
package player

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/llehouerou/moo/internal/tags"
)

// ErrNoTrack is returned by Play and Pause before anything was loaded.
var ErrNoTrack = errors.New("no track loaded")

var (
	speakerMu          sync.Mutex
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// Player plays tracks with beep. It is safe for concurrent use.
type Player struct {
	mu sync.Mutex

	state    State
	path     string
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	codec    Codec
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	info     *tags.Tag

	volumeLevel float64

	// set from the speaker goroutine when the track runs out
	ended      atomic.Bool
	finishedCh chan struct{}
}

// New creates a stopped player at full volume.
func New() *Player {
	return &Player{
		state:       Stopped,
		volumeLevel: 1,
		finishedCh:  make(chan struct{}, 1),
	}
}

// Load opens a track and starts it when autoplay is set, otherwise leaves
// it paused at the beginning.
func (p *Player) Load(path string, autoplay bool) error {
	p.Stop()

	// Drain any stale finish signal from the previous track
	select {
	case <-p.finishedCh:
	default:
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, codec, err := decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	rate, err := initSpeaker(format.SampleRate)
	if err != nil {
		streamer.Close()
		f.Close()
		return err
	}

	info, err := tags.Read(path)
	if err != nil {
		info = &tags.Tag{Path: path, Title: filepath.Base(path)}
	}

	p.mu.Lock()
	p.path = path
	p.file = f
	p.streamer = streamer
	p.format = format
	p.codec = codec
	p.info = info

	var s beep.Streamer = streamer
	if format.SampleRate != rate {
		s = beep.Resample(4, format.SampleRate, rate, streamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: s, Paused: !autoplay}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.volumeLevel <= 0,
	}
	if autoplay {
		p.state = Playing
	} else {
		p.state = Paused
	}
	p.ended.Store(false)
	vol := p.volume
	p.mu.Unlock()

	speaker.Play(beep.Seq(vol, beep.Callback(p.finish)))
	return nil
}

// finish runs on the speaker goroutine with the speaker locked.
func (p *Player) finish() {
	p.ended.Store(true)
	select {
	case p.finishedCh <- struct{}{}:
	default:
	}
}

// Play starts or resumes playback. A finished track restarts from the
// beginning; after Stop there is no track to play.
func (p *Player) Play() error {
	p.mu.Lock()
	if p.path == "" {
		p.mu.Unlock()
		return ErrNoTrack
	}
	if p.ctrl == nil || p.ended.Load() {
		path := p.path
		p.mu.Unlock()
		return p.Load(path, true)
	}
	defer p.mu.Unlock()
	if p.state == Paused {
		speaker.Lock()
		p.ctrl.Paused = false
		speaker.Unlock()
		p.state = Playing
	}
	return nil
}

// Pause pauses playback. Pausing a paused track is a no-op.
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.path == "" {
		return ErrNoTrack
	}
	if p.state == Playing && p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Paused = true
		speaker.Unlock()
		p.state = Paused
	}
	return nil
}

// Paused reports whether audio is not currently playing.
func (p *Player) Paused() bool {
	return p.State() != Playing
}

// Stop stops playback and forgets the track.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	// a stopped player has nothing to resume; only Load brings a track back
	p.path = ""
	p.info = nil
	p.codec = CodecUnknown
	p.ended.Store(false)
	if p.ctrl == nil {
		p.state = Stopped
		return
	}

	speakerMu.Lock()
	if speakerInitialized {
		speaker.Clear()
	}
	speakerMu.Unlock()

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.state = Stopped
}

// State returns the transport state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ended.Load() {
		return Stopped
	}
	return p.state
}

// TrackInfo returns the tags of the loaded track, or nil.
func (p *Player) TrackInfo() *tags.Tag {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.info
}

// Codec returns the codec of the loaded track.
func (p *Player) Codec() Codec {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.codec
}

// Position returns the playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

// Duration returns the length of the loaded track.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// FinishedChan receives once each time a track plays to its end.
func (p *Player) FinishedChan() <-chan struct{} {
	return p.finishedCh
}

// initSpeaker opens the speaker at the rate of the first track and returns
// the rate every later track is resampled to.
func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerInitialized {
		return speakerSampleRate, nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return 0, fmt.Errorf("init speaker: %w", err)
	}
	speakerInitialized = true
	speakerSampleRate = rate
	return rate, nil
}
