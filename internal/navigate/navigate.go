// Package navigate resolves page destinations from a control descriptor.
//
// Nothing here performs I/O: every method returns the destination path and
// whether the caller should navigate at all. Randomness is the server's job;
// the resolver only forwards the server's picks (rtrack, ralbum, /random).
package navigate

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/llehouerou/moo/internal/control"
)

// Fixed destinations.
const (
	PathIndex  = "/"
	PathRandom = "/random"
	PathCovers = "/covers"
)

// Resolver computes destinations for one page.
type Resolver struct {
	ctl *control.Descriptor
}

// New creates a resolver over the descriptor. PopShuffle is called on it
// when a shuffle playlist advances.
func New(ctl *control.Descriptor) *Resolver {
	return &Resolver{ctl: ctl}
}

// Track goes to track n of the current album or playlist. Numbers outside
// 1..ntracks are ignored. Album keys are rendered with a leading slash;
// it is dropped so the path has a single separator.
func (r *Resolver) Track(n int) (string, bool) {
	if r.ctl == nil || n < 1 || n > r.ctl.NTracks {
		return "", false
	}
	num := strconv.Itoa(n)
	if r.ctl.Kind() == control.KindPlaylist {
		return "/" + r.ctl.Mode.String() + "/" + url.PathEscape(r.ctl.Name) + "/" + num, true
	}
	key := strings.TrimLeft(r.ctl.AlKey, "/")
	if key == "" {
		return "", false
	}
	return "/track/" + num + "/" + escapeKey(key), true
}

// Next advances one track according to the page kind and mode.
func (r *Resolver) Next() (string, bool) {
	if r.ctl == nil {
		return "", false
	}
	if r.ctl.Kind() == control.KindAlbum {
		return r.neighbour(r.ctl.Next)
	}

	switch r.ctl.Mode {
	case control.ModeRepeat:
		if r.ctl.Index+1 <= r.ctl.NTracks {
			return r.Track(r.ctl.Index + 1)
		}
		return r.Track(1)
	case control.ModeShuffle:
		return r.shuffled()
	default:
		return r.Track(r.ctl.Index + 1)
	}
}

// Prev goes back one track according to the page kind and mode.
func (r *Resolver) Prev() (string, bool) {
	if r.ctl == nil {
		return "", false
	}
	if r.ctl.Kind() == control.KindAlbum {
		return r.neighbour(r.ctl.Prev)
	}

	switch r.ctl.Mode {
	case control.ModeRepeat:
		if r.ctl.Index-1 >= 1 {
			return r.Track(r.ctl.Index - 1)
		}
		return r.Track(r.ctl.NTracks)
	case control.ModeShuffle:
		return r.shuffled()
	default:
		return r.Track(r.ctl.Index - 1)
	}
}

// RandomTrack goes to the track the server picked for this page.
func (r *Resolver) RandomTrack() (string, bool) {
	if r.ctl == nil {
		return "", false
	}
	return r.Track(r.ctl.RTrack)
}

// RandomAlbum goes to the album the server picked for this page.
func (r *Resolver) RandomAlbum() (string, bool) {
	if r.ctl == nil || r.ctl.RAlbum == "" {
		return "", false
	}
	key := r.ctl.RAlbum
	if !strings.HasPrefix(key, "/") {
		key = "/" + key
	}
	return "/album" + escapeKey(key), true
}

// Random asks the server for an arbitrary random resource.
func (r *Resolver) Random() (string, bool) {
	return PathRandom, true
}

// Repeat restarts the current playlist in repeat mode.
func (r *Resolver) Repeat() (string, bool) {
	if r.ctl == nil || r.ctl.Name == "" {
		return "", false
	}
	return "/repeat/" + url.PathEscape(r.ctl.Name) + "/1", true
}

// Shuffle restarts the current playlist in shuffle mode.
func (r *Resolver) Shuffle() (string, bool) {
	if r.ctl == nil || r.ctl.Name == "" {
		return "", false
	}
	return "/shuffle/" + url.PathEscape(r.ctl.Name), true
}

// Covers goes to the covers page.
func (r *Resolver) Covers() (string, bool) {
	return PathCovers, true
}

// Index goes to the index page.
func (r *Resolver) Index() (string, bool) {
	return PathIndex, true
}

// Cover is the album cover image of an album page.
func (r *Resolver) Cover() (string, bool) {
	if r.ctl == nil || r.ctl.Kind() != control.KindAlbum {
		return "", false
	}
	key := strings.TrimLeft(r.ctl.AlKey, "/")
	if key == "" {
		return "", false
	}
	return "/img/" + escapeKey(key), true
}

func (r *Resolver) neighbour(n int) (string, bool) {
	if n <= 0 {
		return "", false
	}
	return r.Track(n)
}

// shuffled pops the next index off the shuffle sequence. An exhausted
// sequence does not navigate.
func (r *Resolver) shuffled() (string, bool) {
	n, ok := r.ctl.PopShuffle()
	if !ok {
		return "", false
	}
	return r.Track(n)
}

// escapeKey escapes each segment of a slash-separated album key.
func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
