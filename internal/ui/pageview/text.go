package pageview

import (
	"slices"
	"strings"

	"github.com/llehouerou/moo/internal/dom"
	"github.com/llehouerou/moo/internal/panel"
	"github.com/llehouerou/moo/internal/ui/render"
)

var blockTags = map[string]bool{
	"ADDRESS": true, "ARTICLE": true, "ASIDE": true, "BLOCKQUOTE": true,
	"BR": true, "DD": true, "DIV": true, "DL": true, "DT": true,
	"FIGCAPTION": true, "FIGURE": true, "FOOTER": true, "FORM": true,
	"H1": true, "H2": true, "H3": true, "H4": true, "H5": true, "H6": true,
	"HEADER": true, "HR": true, "LI": true, "MAIN": true, "NAV": true,
	"OL": true, "P": true, "PRE": true, "SECTION": true, "TABLE": true,
	"TBODY": true, "THEAD": true, "TR": true, "UL": true,
}

var skipTags = map[string]bool{
	"AUDIO": true, "HEAD": true, "NOSCRIPT": true, "SCRIPT": true,
	"STYLE": true, "TEMPLATE": true, "TITLE": true,
}

// lines flattens an element into display lines. Block elements start new
// lines, table cells in a row are separated by two spaces, and hidden
// elements and those matched by skip are left out.
func lines(el *dom.Element, skip func(*dom.Element) bool) []string {
	b := &lineBuilder{skip: skip}
	for _, c := range el.Children {
		b.walk(c)
	}
	b.flush()
	return b.lines
}

type lineBuilder struct {
	lines []string
	cur   strings.Builder
	cells int
	skip  func(*dom.Element) bool
}

func (b *lineBuilder) flush() {
	if s := strings.TrimSpace(b.cur.String()); s != "" {
		b.lines = append(b.lines, s)
	}
	b.cur.Reset()
	b.cells = 0
}

func (b *lineBuilder) write(text string) {
	words := strings.Fields(render.Sanitize(text))
	if len(words) == 0 {
		return
	}
	if b.cur.Len() > 0 {
		b.cur.WriteByte(' ')
	}
	b.cur.WriteString(strings.Join(words, " "))
}

func (b *lineBuilder) walk(e *dom.Element) {
	if e.IsText() {
		b.write(e.Text)
		return
	}
	if skipTags[e.Tag] || !shown(e) || (b.skip != nil && b.skip(e)) {
		return
	}

	block := blockTags[e.Tag]
	if block {
		b.flush()
	}
	if e.Tag == "TD" || e.Tag == "TH" {
		if b.cells > 0 {
			b.cur.WriteString(" ")
		}
		b.cells++
	}
	for _, c := range e.Children {
		b.walk(c)
	}
	if block {
		b.flush()
	}
}

// shown reports whether an element's inline style leaves it visible.
// Panels are only shown once toggled, so an unset display hides them.
func shown(e *dom.Element) bool {
	if panel.Hidden(e) {
		return false
	}
	if isPanel(e.ID) {
		return panel.Visible(e)
	}
	return true
}

func isPanel(id string) bool {
	return id != "" && slices.Contains(panel.All, id)
}
