// Package overlay draws a box on top of an already rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Center places box over the middle of base, which is width by height
// cells. Base lines are padded as needed; styled text on both sides of the
// box is kept.
func Center(base, box string, width, height int) string {
	boxLines := strings.Split(box, "\n")
	boxWidth := 0
	for _, l := range boxLines {
		boxWidth = max(boxWidth, ansi.StringWidth(l))
	}
	top := max((height-len(boxLines))/2, 0)
	left := max((width-boxWidth)/2, 0)
	return Place(base, box, left, top, width)
}

// Place overlays box with its top-left corner at column x, row y.
func Place(base, box string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(box, "\n") {
		row := y + i
		for len(baseLines) <= row {
			baseLines = append(baseLines, "")
		}

		under := baseLines[row]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		end := x + ansi.StringWidth(line)
		result := ansi.Cut(under, 0, x) + line
		if end < width {
			result += ansi.Cut(under, end, width)
		}
		baseLines[row] = result
	}
	return strings.Join(baseLines, "\n")
}
