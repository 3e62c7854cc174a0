// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/moo/internal/clock"
	pagelayout "github.com/llehouerou/moo/internal/layout"
	"github.com/llehouerou/moo/internal/panel"
	"github.com/llehouerou/moo/internal/ui/headerbar"
	"github.com/llehouerou/moo/internal/ui/overlay"
	"github.com/llehouerou/moo/internal/ui/pageview"
	"github.com/llehouerou/moo/internal/ui/playerbar"
	"github.com/llehouerou/moo/internal/ui/render"
	"github.com/llehouerou/moo/internal/ui/styles"
)

// minCoverPageWidth is the narrowest page body that still leaves room for
// the cover beside it.
const minCoverPageWidth = 40

const hints = "space play/pause · n/p next/prev · r random · / search · F1 keys · q quit"

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	t := styles.T(m.dark)

	header := headerbar.Render(t, m.header(), m.width)

	bar := playerbar.NewState(m.player)
	var barView string
	if bar.Active() {
		barView = playerbar.Render(t, bar, m.width)
	}

	contentHeight := m.contentHeight()
	pageWidth := m.width
	showCover := m.showCover()
	if showCover {
		coverWidth, _ := m.cover.Size()
		pageWidth -= coverWidth + 1
	}
	doc := m.ctl.Context().Doc
	content := pageview.Render(t, doc, m.class, pageWidth, contentHeight)
	if showCover {
		art := lipgloss.NewStyle().Height(contentHeight).Render(m.cover.Placeholder())
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, " ", art)
	}

	parts := []string{header, content}
	if barView != "" {
		parts = append(parts, barView)
	}
	parts = append(parts, m.statusLine(t))
	view := strings.Join(parts, "\n")
	if m.keys.Active() {
		view = overlay.Center(view, m.keys.View(t), m.width, m.height)
		showCover = false
	}

	// terminal image sequences go around the text so the layout never
	// measures them
	view = m.coverPending + view
	if showCover {
		view += m.cover.Place(headerbar.Height+1, pageWidth+2)
	}
	return view
}

func (m Model) header() headerbar.Header {
	h := headerbar.Header{
		Server:  m.serverHost(),
		Time:    clock.Format(m.now()),
		Weather: m.weatherText,
		Cache:   m.cacheDesc,
	}
	if m.page != nil {
		h.Path = m.page.Path
	}
	if m.loading != "" {
		h.Loading = m.spinner.View() + " " + m.loading
	}
	return h
}

// showCover reports whether the cover fits beside the page body and the
// page has not hidden its cover container.
func (m Model) showCover() bool {
	if !m.cover.HasImage() || m.class != pagelayout.ClassDefault {
		return false
	}
	if doc := m.ctl.Context().Doc; doc != nil && panel.Hidden(doc.GetElementByID(pagelayout.CoverID)) {
		return false
	}
	w, h := m.cover.Size()
	return m.width-w-1 >= minCoverPageWidth && m.contentHeight() >= h
}

func (m Model) statusLine(t *styles.Theme) string {
	if m.prompt.Active() {
		return m.prompt.View(t)
	}
	if m.status != "" {
		return t.S().Error.Render(render.Truncate(m.status, m.width))
	}
	return t.S().Subtle.Render(render.Truncate(hints, m.width))
}
