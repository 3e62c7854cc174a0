// Package playback starts and pauses the page's audio and schedules the
// glow flicker on the title and track elements.
package playback

import (
	"errors"
	"fmt"
	"time"

	"github.com/llehouerou/moo/internal/dom"
)

// Audio is the single audio element of a page.
type Audio interface {
	Paused() bool
	Play() error
	Pause() error
}

// ErrNoAudio is returned when the page has no audio element.
var ErrNoAudio = errors.New("page has no audio")

// Glow targets and class.
const (
	GlowClass = "glow"
	TitleID   = "title"
	TrackID   = "track"
)

// GlowStep adds or removes the glow class on one element after Delay.
// Steps are independent and never cancelled; overlapping schedules from
// quick successive toggles interleave.
type GlowStep struct {
	Delay     time.Duration
	ElementID string
	Add       bool
}

// GlowOn is the flicker played when audio starts.
func GlowOn() []GlowStep {
	return []GlowStep{
		{0, TrackID, true},
		{150 * time.Millisecond, TrackID, false},
		{250 * time.Millisecond, TrackID, true},
		{0, TitleID, true},
		{50 * time.Millisecond, TitleID, false},
		{300 * time.Millisecond, TitleID, true},
	}
}

// GlowOff clears the glow immediately.
func GlowOff() []GlowStep {
	return []GlowStep{
		{0, TitleID, false},
		{0, TrackID, false},
	}
}

// Apply performs one step on the document. Missing elements are skipped.
func Apply(doc *dom.Document, s GlowStep) {
	if doc == nil {
		return
	}
	el := doc.GetElementByID(s.ElementID)
	if el == nil {
		return
	}
	if s.Add {
		el.AddClass(GlowClass)
	} else {
		el.RemoveClass(GlowClass)
	}
}

// Toggler flips the audio between playing and paused.
type Toggler struct {
	Glow bool
}

// Toggle plays paused audio or pauses playing audio, and returns the glow
// schedule for the transition when glow is enabled.
func (t Toggler) Toggle(a Audio) ([]GlowStep, error) {
	if a == nil {
		return nil, ErrNoAudio
	}
	if a.Paused() {
		if err := a.Play(); err != nil {
			return nil, fmt.Errorf("play: %w", err)
		}
		if t.Glow {
			return GlowOn(), nil
		}
		return nil, nil
	}
	if err := a.Pause(); err != nil {
		return nil, fmt.Errorf("pause: %w", err)
	}
	if t.Glow {
		return GlowOff(), nil
	}
	return nil, nil
}

// Next is anything that can advance to the next track.
type Next interface {
	Next() (string, bool)
}

// Ended handles the end of playback by advancing to the next track.
func Ended(r Next) (string, bool) {
	if r == nil {
		return "", false
	}
	return r.Next()
}
