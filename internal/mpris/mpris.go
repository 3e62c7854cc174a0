//go:build linux

// Package mpris exposes the player on the session bus. Transport commands
// are forwarded as key codes so they go through the same page handlers as
// the keyboard.
package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/moo/internal/player"
	"github.com/llehouerou/moo/internal/tags"
)

// Key codes sent for transport commands.
const (
	codeNext      = "KeyN"
	codePrev      = "KeyP"
	codePlayPause = "Space"
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

// Adapter connects the player to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts an MPRIS adapter. send receives key codes and
// must be safe to call from any goroutine.
func New(status Status, send func(code string)) (*Adapter, error) {
	if status == nil || send == nil {
		return nil, fmt.Errorf("mpris: status and send are required")
	}
	a := &Adapter{
		server: server.NewServer("moo", &rootAdapter{}, &playerAdapter{status: status, send: send}),
	}

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error { return nil }

func (r *rootAdapter) Quit() error { return nil }

func (r *rootAdapter) CanQuit() (bool, error) { return false, nil }

func (r *rootAdapter) CanRaise() (bool, error) { return false, nil }

func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }

func (r *rootAdapter) Identity() (string, error) {
	return "Moo", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/mp3", "audio/ogg", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and the
// volume part of the optional interfaces.
type playerAdapter struct {
	status Status
	send   func(code string)
}

func (p *playerAdapter) Next() error {
	p.send(codeNext)
	return nil
}

func (p *playerAdapter) Previous() error {
	p.send(codePrev)
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.send(codePlayPause)
	return nil
}

// Play and Pause only toggle when the state differs.
func (p *playerAdapter) Play() error {
	if p.status.State() != player.Playing {
		p.send(codePlayPause)
	}
	return nil
}

func (p *playerAdapter) Pause() error {
	if p.status.State() == player.Playing {
		p.send(codePlayPause)
	}
	return nil
}

// Stop pauses; the page has no stopped state.
func (p *playerAdapter) Stop() error {
	return p.Pause()
}

func (p *playerAdapter) Seek(_ types.Microseconds) error { return nil }

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error { return nil }

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error { return nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.status.State() {
	case player.Playing:
		return types.PlaybackStatusPlaying, nil
	case player.Paused:
		return types.PlaybackStatusPaused, nil
	case player.Stopped:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	return metadata(p.status.TrackInfo(), p.status.Duration()), nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.status.Volume(), nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.status.SetVolume(v)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.status.Position().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

// Next and previous are resolved by the page, which may have nowhere to
// go; the command is then a no-op.
func (p *playerAdapter) CanGoNext() (bool, error) { return true, nil }

func (p *playerAdapter) CanGoPrevious() (bool, error) { return true, nil }

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.status.TrackInfo() != nil, nil
}

func (p *playerAdapter) CanPause() (bool, error) { return true, nil }

func (p *playerAdapter) CanSeek() (bool, error) { return false, nil }

func (p *playerAdapter) CanControl() (bool, error) { return true, nil }

func metadata(track *tags.Tag, length time.Duration) types.Metadata {
	if track == nil {
		return types.Metadata{}
	}
	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(track.Path)),
		Length:      types.Microseconds(length.Microseconds()),
		Title:       track.Title,
		Album:       track.Album,
		TrackNumber: track.TrackNumber,
		Genre:       nonEmpty(track.Genre),
	}
	if track.Artist != "" {
		meta.Artist = []string{track.Artist}
	}
	if track.AlbumArtist != "" {
		meta.AlbumArtist = []string{track.AlbumArtist}
	}
	if art := tags.FolderArtPath(track.Path); art != "" {
		meta.ArtUrl = "file://" + art
	}
	return meta
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
