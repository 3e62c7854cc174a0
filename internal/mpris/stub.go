//go:build !linux

package mpris

import (
	"time"

	"github.com/llehouerou/moo/internal/player"
	"github.com/llehouerou/moo/internal/tags"
)

// Status is the read side of the player.
type Status interface {
	State() player.State
	TrackInfo() *tags.Tag
	Position() time.Duration
	Duration() time.Duration
	Volume() float64
	SetVolume(level float64)
}

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ Status, _ func(code string)) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
