// Package layout classifies the viewport against fixed breakpoints and
// reflects the result as classes on the album containers.
package layout

import "github.com/llehouerou/moo/internal/dom"

// Container element ids.
const (
	CoverID = "album-cover"
	AudioID = "album-audio"
)

// Class is the layout state of a page.
type Class int

const (
	ClassDefault Class = iota
	ClassSmall
	ClassThin
)

// String returns the CSS class name, empty for the default layout.
func (c Class) String() string {
	switch c {
	case ClassSmall:
		return "small"
	case ClassThin:
		return "thin"
	default:
		return ""
	}
}

// Breakpoints are viewport limits in pixels, inclusive.
type Breakpoints struct {
	SmallWidth int
	ThinHeight int
}

// DefaultBreakpoints match the stylesheet served with Moo pages.
var DefaultBreakpoints = Breakpoints{SmallWidth: 640, ThinHeight: 320}

// Classify returns the layout class for a viewport. Width wins over height.
func (b Breakpoints) Classify(width, height int) Class {
	switch {
	case width <= b.SmallWidth:
		return ClassSmall
	case height <= b.ThinHeight:
		return ClassThin
	default:
		return ClassDefault
	}
}

// Apply sets the class state of both album containers so that exactly the
// given class holds. Pages without both containers are left untouched.
func Apply(doc *dom.Document, c Class) {
	if doc == nil {
		return
	}
	cover := doc.GetElementByID(CoverID)
	audio := doc.GetElementByID(AudioID)
	if cover == nil || audio == nil {
		return
	}
	for _, el := range []*dom.Element{cover, audio} {
		for _, other := range []Class{ClassSmall, ClassThin} {
			if other == c {
				el.AddClass(other.String())
			} else {
				el.RemoveClass(other.String())
			}
		}
	}
}

// Current reads the class state back from the cover container.
func Current(doc *dom.Document) Class {
	if doc == nil {
		return ClassDefault
	}
	cover := doc.GetElementByID(CoverID)
	switch {
	case cover == nil:
		return ClassDefault
	case cover.HasClass(ClassSmall.String()):
		return ClassSmall
	case cover.HasClass(ClassThin.String()):
		return ClassThin
	default:
		return ClassDefault
	}
}

// CellSize is the nominal pixel size of one terminal cell.
type CellSize struct {
	Width  int
	Height int
}

// DefaultCellSize maps an 80x20 terminal to 640x320 pixels.
var DefaultCellSize = CellSize{Width: 8, Height: 16}

// Pixels converts a terminal size in cells to pixels.
func (c CellSize) Pixels(cols, rows int) (width, height int) {
	return cols * c.Width, rows * c.Height
}
