// Package panel shows and hides auxiliary page panels by mutating their
// inline display style.
package panel

import (
	"errors"

	"github.com/llehouerou/moo/internal/dom"
)

// Panel element ids.
const (
	Covers    = "covers"
	Metadata  = "metadata"
	Tags      = "tags"
	Help      = "help"
	Index     = "index"
	Classical = "classical"
	Related   = "related"
)

// All lists the panels in key order.
var All = []string{Covers, Metadata, Tags, Help, Index, Classical, Related}

// ErrNoElement is returned when the target element is missing.
var ErrNoElement = errors.New("no such element")

const (
	displayNone      = "none"
	displayBlock     = "block"
	displayTable     = "table"
	visibilityHidden = "hidden"
)

// shown is the display value that makes el visible.
func shown(el *dom.Element) string {
	if el.Tag == "TABLE" {
		return displayTable
	}
	return displayBlock
}

// Toggle flips an element assumed to start visible. An unset display
// counts as visible, so the first call hides it.
func Toggle(el *dom.Element) error {
	if el == nil {
		return ErrNoElement
	}
	switch el.Style.Display {
	case "", displayBlock, displayTable:
		el.Style.Display = displayNone
	default:
		el.Style.Display = shown(el)
	}
	return nil
}

// ToggleHidden flips an element assumed to start hidden. An unset display
// counts as hidden, so the first call shows it.
func ToggleHidden(el *dom.Element) error {
	if el == nil {
		return ErrNoElement
	}
	switch el.Style.Display {
	case "", displayNone:
		el.Style.Display = shown(el)
	default:
		el.Style.Display = displayNone
	}
	return nil
}

// Visible reports whether a panel is currently displayed. Panels with no
// inline display are treated as hidden, matching ToggleHidden.
func Visible(el *dom.Element) bool {
	if el == nil {
		return false
	}
	return el.Style.Display != "" && el.Style.Display != displayNone
}

// Hidden reports whether an element's inline style hides it. An unset
// display counts as shown, matching Toggle; a missing element is not hidden.
func Hidden(el *dom.Element) bool {
	if el == nil {
		return false
	}
	return el.Style.Display == displayNone || el.Style.Visibility == visibilityHidden
}
