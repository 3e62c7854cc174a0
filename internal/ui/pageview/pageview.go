// Package pageview renders a loaded Moo page in the terminal: the glowing
// title and track line, the page text, and whichever panels are shown.
package pageview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/moo/internal/clock"
	"github.com/llehouerou/moo/internal/dom"
	pagelayout "github.com/llehouerou/moo/internal/layout"
	"github.com/llehouerou/moo/internal/panel"
	"github.com/llehouerou/moo/internal/playback"
	uilayout "github.com/llehouerou/moo/internal/ui/layout"
	"github.com/llehouerou/moo/internal/ui/overlay"
	"github.com/llehouerou/moo/internal/ui/render"
	"github.com/llehouerou/moo/internal/ui/styles"
)

// Render draws doc into exactly width by height cells.
func Render(t *styles.Theme, doc *dom.Document, class pagelayout.Class, width, height int) string {
	if doc == nil || width <= 0 || height <= 0 {
		return blank(width, height)
	}

	var shownPanels []string
	for _, id := range panel.All {
		if id != panel.Help && panel.Visible(doc.GetElementByID(id)) {
			shownPanels = append(shownPanels, id)
		}
	}

	side := uilayout.SideBySide(class, width)
	mainWidth := uilayout.MainWidth(width, side, len(shownPanels) > 0)
	panelWidth := uilayout.PanelWidth(width, side, len(shownPanels) > 0)

	main := heading(t, doc, mainWidth)
	if class != pagelayout.ClassThin {
		for _, l := range Body(doc) {
			main = append(main, t.S().Base.Render(render.TruncateEllipsis(l, mainWidth)))
		}
	}

	var panels []string
	for _, id := range shownPanels {
		panels = append(panels, renderPanel(t, doc.GetElementByID(id), id, panelWidth))
	}

	var view string
	mainBlock := strings.Join(main, "\n")
	switch {
	case len(panels) == 0:
		view = mainBlock
	case side:
		view = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(mainWidth).Render(mainBlock),
			lipgloss.JoinVertical(lipgloss.Left, panels...))
	default:
		view = lipgloss.JoinVertical(lipgloss.Left, append([]string{mainBlock}, panels...)...)
	}
	view = fit(view, width, height)

	if help := doc.GetElementByID(panel.Help); panel.Visible(help) {
		box := renderPanel(t, help, panel.Help, min(width, max(width/2, uilayout.MinPanelWidth)))
		view = fit(overlay.Center(view, box, width, height), width, height)
	}
	return view
}

// Body returns the page text outside the title, track, clock and panels.
func Body(doc *dom.Document) []string {
	return lines(doc.Body(), func(e *dom.Element) bool {
		switch e.ID {
		case playback.TitleID, playback.TrackID, clock.TimeID, clock.WeatherID:
			return true
		}
		return isPanel(e.ID)
	})
}

// heading renders the title and track lines. Glowing elements are drawn
// with the theme glow.
func heading(t *styles.Theme, doc *dom.Document, width int) []string {
	var out []string

	title := doc.GetElementByID(playback.TitleID)
	switch {
	case title != nil:
		out = append(out, styled(t, title, t.S().Title, width))
	case doc.Title() != "":
		out = append(out, t.S().Title.Render(render.TruncateEllipsis(render.Sanitize(doc.Title()), width)))
	}
	if track := doc.GetElementByID(playback.TrackID); track != nil {
		out = append(out, styled(t, track, t.S().Muted, width))
	}
	if len(out) > 0 {
		out = append(out, "")
	}
	return out
}

func styled(t *styles.Theme, el *dom.Element, style lipgloss.Style, width int) string {
	text := render.TruncateEllipsis(strings.Join(strings.Fields(render.Sanitize(el.TextContent())), " "), width)
	if el.HasClass(playback.GlowClass) {
		return t.Glow(text)
	}
	return style.Render(text)
}

func renderPanel(t *styles.Theme, el *dom.Element, id string, width int) string {
	inner := max(width-4, 1)
	content := []string{t.S().Subtle.Render(id)}
	for _, l := range lines(el, nil) {
		content = append(content, render.TruncateEllipsis(l, inner))
	}
	return t.S().Panel.Width(max(width-2, 0)).Render(strings.Join(content, "\n"))
}

// fit truncates or pads view to width by height cells.
func fit(view string, width, height int) string {
	rows := strings.Split(view, "\n")
	if len(rows) > height {
		rows = rows[:height]
	}
	for i, r := range rows {
		rows[i] = render.Fit(r, width)
	}
	for len(rows) < height {
		rows = append(rows, strings.Repeat(" ", width))
	}
	return strings.Join(rows, "\n")
}

func blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return fit("", width, height)
}
