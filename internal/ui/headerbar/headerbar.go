// Package headerbar renders the single line above the page: where the
// client is, and the clock and weather widget.
package headerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/moo/internal/ui/render"
	"github.com/llehouerou/moo/internal/ui/styles"
)

// Height is the fixed height of the header bar.
const Height = 1

// Header is what the header bar shows.
type Header struct {
	Server  string // host of the Moo server
	Path    string // current page path
	Loading string // spinner frame and message while a page loads
	Time    string
	Weather string
	Cache   string // e.g. "120 MB cached"
}

// Render returns the header line for the given width.
func Render(t *styles.Theme, h Header, width int) string {
	if width < 20 {
		return ""
	}
	sep := t.S().Subtle.Render(" │ ")

	left := t.S().Playing.Render("moo") + sep + t.S().Muted.Render(h.Server)
	switch {
	case h.Loading != "":
		left += sep + t.S().Warning.Render(h.Loading)
	case h.Path != "":
		left += sep + t.S().Base.Render(render.Sanitize(h.Path))
	}

	var right string
	for _, part := range []string{h.Cache, h.Weather, h.Time} {
		if part == "" {
			continue
		}
		if right != "" {
			right += sep
		}
		right += t.S().Muted.Render(part)
	}

	rightWidth := lipgloss.Width(right)
	if rightWidth > 0 && rightWidth+8 > width/2 {
		// clock wins over the rest when space is short
		right = t.S().Muted.Render(h.Time)
		rightWidth = lipgloss.Width(right)
	}
	left = render.TruncateEllipsis(left, max(width-rightWidth-1, 1))
	return render.Row(left, right, width)
}
