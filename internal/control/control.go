// Package control parses the control element a Moo page carries into a
// typed descriptor of the current album or playlist position.
package control

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Attributes is a source of string attributes, such as a DOM element.
type Attributes interface {
	Attr(name string) (string, bool)
}

// Attrs is a map-backed Attributes.
type Attrs map[string]string

// Attr implements Attributes.
func (a Attrs) Attr(name string) (string, bool) {
	v, ok := a[name]
	return v, ok
}

// Mode is the playlist sequencing policy.
type Mode int

const (
	ModePlay Mode = iota
	ModeRepeat
	ModeShuffle
)

// String returns the mode as it appears in page paths.
func (m Mode) String() string {
	switch m {
	case ModePlay:
		return "play"
	case ModeRepeat:
		return "repeat"
	case ModeShuffle:
		return "shuffle"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode attribute value.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "play", "":
		return ModePlay, nil
	case "repeat":
		return ModeRepeat, nil
	case "shuffle":
		return ModeShuffle, nil
	default:
		return ModePlay, fmt.Errorf("unknown mode %q", s)
	}
}

// Kind distinguishes album pages from playlist pages.
type Kind int

const (
	KindAlbum Kind = iota
	KindPlaylist
)

func (k Kind) String() string {
	if k == KindPlaylist {
		return "playlist"
	}
	return "album"
}

// Descriptor is the parsed control element.
type Descriptor struct {
	NTracks int
	Next    int // 0 when there is no next track
	Prev    int // 0 when there is no previous track
	AlKey   string
	RTrack  int
	RAlbum  string
	Mode    Mode
	Index   int
	Name    string
	Shuffle []int
}

// ValidationError reports one malformed control attribute.
type ValidationError struct {
	Attr  string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("control attribute %s=%q: %v", e.Attr, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

var (
	errNegative   = errors.New("must not be negative")
	errOutOfRange = errors.New("exceeds ntracks")
	errNotAnArray = errors.New("not a JSON integer array")
	errNotAnInt   = errors.New("not an integer")
)

// Parse reads and validates the control attributes. Every malformed
// attribute is reported as a *ValidationError; multiple failures are joined.
// The descriptor is returned even on error, with each malformed attribute
// left at its zero value.
func Parse(attrs Attributes) (*Descriptor, error) {
	p := parser{attrs: attrs}
	d := &Descriptor{
		NTracks: p.count("ntracks"),
		Next:    p.count("next"),
		Prev:    p.count("prev"),
		RTrack:  p.count("rtrack"),
		Index:   p.count("index"),
		AlKey:   p.str("alkey"),
		RAlbum:  p.str("ralbum"),
		Name:    p.str("name"),
	}

	if raw, ok := attrs.Attr("mode"); ok {
		m, err := ParseMode(raw)
		if err != nil {
			p.fail("mode", raw, err)
		}
		d.Mode = m
	}

	if raw, ok := attrs.Attr("shuffle"); ok && strings.TrimSpace(raw) != "" {
		var seq []int
		if err := json.Unmarshal([]byte(raw), &seq); err != nil {
			p.fail("shuffle", raw, errNotAnArray)
			seq = nil
		}
		d.Shuffle = seq
	}

	d.Next = p.bounded("next", d.Next, d.NTracks)
	d.Prev = p.bounded("prev", d.Prev, d.NTracks)
	d.Index = p.bounded("index", d.Index, d.NTracks)

	return d, errors.Join(p.errs...)
}

// Kind reports whether the descriptor belongs to an album or a playlist page.
func (d *Descriptor) Kind() Kind {
	if d.Name != "" {
		return KindPlaylist
	}
	return KindAlbum
}

// PopShuffle consumes the shuffle sequence from the end.
func (d *Descriptor) PopShuffle() (int, bool) {
	n := len(d.Shuffle)
	if n == 0 {
		return 0, false
	}
	v := d.Shuffle[n-1]
	d.Shuffle = d.Shuffle[:n-1]
	return v, true
}

type parser struct {
	attrs Attributes
	errs  []error
}

func (p *parser) fail(attr, value string, err error) {
	p.errs = append(p.errs, &ValidationError{Attr: attr, Value: value, Err: err})
}

func (p *parser) str(name string) string {
	v, _ := p.attrs.Attr(name)
	return v
}

// count parses a non-negative integer attribute; absent or empty is zero.
func (p *parser) count(name string) int {
	raw, ok := p.attrs.Attr(name)
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(name, raw, errNotAnInt)
		return 0
	}
	if n < 0 {
		p.fail(name, raw, errNegative)
		return 0
	}
	return n
}

func (p *parser) bounded(name string, v, ntracks int) int {
	if v > ntracks {
		p.fail(name, strconv.Itoa(v), errOutOfRange)
		return 0
	}
	return v
}
