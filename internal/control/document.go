package control

import (
	"errors"
	"fmt"

	"github.com/llehouerou/moo/internal/dom"
)

// Element ids of the control element on album and playlist pages, and of
// the track element that carries alkey and rtrack on newer album pages.
const (
	AlbumControlID    = "control"
	PlaylistControlID = "playlist-control"
	TrackID           = "track"
)

// ErrNoControl is returned when a page has no control element.
var ErrNoControl = errors.New("page has no control element")

// FromDocument locates the control element and parses it. Attributes missing
// from the control element are looked up on the track element. Like Parse,
// a malformed element still yields its well-formed fields.
func FromDocument(doc *dom.Document) (*Descriptor, error) {
	el := doc.GetElementByID(PlaylistControlID)
	if el == nil {
		el = doc.GetElementByID(AlbumControlID)
	}
	if el == nil {
		return nil, ErrNoControl
	}

	var attrs Attributes = el
	if track := doc.GetElementByID(TrackID); track != nil {
		attrs = fallback{primary: el, secondary: track}
	}

	d, err := Parse(attrs)
	if err != nil {
		return d, fmt.Errorf("parse #%s: %w", el.ID, err)
	}
	return d, nil
}

type fallback struct {
	primary   Attributes
	secondary Attributes
}

func (f fallback) Attr(name string) (string, bool) {
	if v, ok := f.primary.Attr(name); ok {
		return v, true
	}
	if name != "alkey" && name != "rtrack" {
		return "", false
	}
	return f.secondary.Attr(name)
}
