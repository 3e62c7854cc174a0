package pageview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/moo/internal/dom"
	pagelayout "github.com/llehouerou/moo/internal/layout"
	"github.com/llehouerou/moo/internal/panel"
	"github.com/llehouerou/moo/internal/playback"
	"github.com/llehouerou/moo/internal/ui/styles"
	"github.com/llehouerou/moo/internal/ui/testutil"
)

const trackPage = `<html><head><title>So What</title><script>var x = 1</script></head>
<body>
<div id="control" ntracks="5" next="2" alkey="/Miles Davis/Kind of Blue"></div>
<h1 id="title">Kind of Blue</h1>
<span id="track">So What</span>
<span id="time">9:41 PM</span>
<div id="album-cover"></div>
<ol><li>So What</li><li>Freddie   Freeloader</li></ol>
<p>Columbia, 1959</p>
<div id="covers"><p>front.jpg</p></div>
<table id="tags"><tr><td>artist</td><td>Miles Davis</td></tr><tr><td>year</td><td>1959</td></tr></table>
<div id="help"><p>n next</p><p>p previous</p></div>
<p style="display: none">hidden text</p>
<audio src="/static/01.mp3"></audio>
</body></html>`

func parse(t *testing.T, html string) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(html)
	require.NoError(t, err)
	return doc
}

func TestBody(t *testing.T) {
	doc := parse(t, trackPage)
	assert.Equal(t, []string{"So What", "Freddie Freeloader", "Columbia, 1959"}, Body(doc))

	require.NoError(t, panel.ToggleHidden(doc.GetElementByID(panel.Tags)))
	assert.NotContains(t, Body(doc), "artist  Miles Davis")
}

func TestLines_TableCells(t *testing.T) {
	doc := parse(t, trackPage)
	el := doc.GetElementByID(panel.Tags)
	assert.Equal(t, []string{"artist  Miles Davis", "year  1959"}, lines(el, nil))
}

func TestRender_Default(t *testing.T) {
	doc := parse(t, trackPage)
	out := Render(styles.T(false), doc, pagelayout.ClassDefault, 100, 20)

	rows := strings.Split(out, "\n")
	require.Len(t, rows, 20)
	for _, r := range rows {
		assert.Equal(t, 100, testutil.MeasureWidth(r))
	}

	plain := testutil.StripANSI(out)
	assert.Contains(t, plain, "Kind of Blue")
	assert.Contains(t, plain, "Freddie Freeloader")
	assert.NotContains(t, plain, "hidden text")
	assert.NotContains(t, plain, "var x")
	assert.NotContains(t, plain, "front.jpg")
	assert.NotContains(t, plain, "9:41 PM")
}

func TestRender_PanelsSideBySide(t *testing.T) {
	doc := parse(t, trackPage)
	require.NoError(t, panel.ToggleHidden(doc.GetElementByID(panel.Tags)))

	out := Render(styles.T(true), doc, pagelayout.ClassDefault, 100, 20)
	line := testutil.FindLine(out, "Miles Davis")
	require.NotEmpty(t, line)
	assert.Contains(t, line, "artist  Miles Davis")

	track := testutil.FindLine(out, "So What")
	assert.Contains(t, track, "tags", "panel sits beside the heading")
}

func TestRender_PanelsStackedWhenSmall(t *testing.T) {
	doc := parse(t, trackPage)
	require.NoError(t, panel.ToggleHidden(doc.GetElementByID(panel.Covers)))

	out := Render(styles.T(false), doc, pagelayout.ClassSmall, 60, 30)
	lines := testutil.SplitLines(testutil.StripANSI(out))
	var titleRow, coverRow int
	for i, l := range lines {
		if strings.Contains(l, "Kind of Blue") {
			titleRow = i
		}
		if strings.Contains(l, "front.jpg") {
			coverRow = i
		}
	}
	assert.Greater(t, coverRow, titleRow)
}

func TestRender_ThinHidesBody(t *testing.T) {
	doc := parse(t, trackPage)
	out := testutil.StripANSI(Render(styles.T(false), doc, pagelayout.ClassThin, 80, 10))
	assert.Contains(t, out, "Kind of Blue")
	assert.NotContains(t, out, "Columbia")
}

func TestRender_HelpOverlay(t *testing.T) {
	doc := parse(t, trackPage)
	require.NoError(t, panel.ToggleHidden(doc.GetElementByID(panel.Help)))

	out := Render(styles.T(false), doc, pagelayout.ClassDefault, 80, 20)
	assert.True(t, testutil.ContainsLine(out, "n next"))
	assert.Len(t, strings.Split(out, "\n"), 20)
}

func TestRender_Glow(t *testing.T) {
	doc := parse(t, trackPage)
	theme := styles.T(false)
	before := Render(theme, doc, pagelayout.ClassDefault, 80, 10)

	doc.GetElementByID(playback.TitleID).AddClass(playback.GlowClass)
	after := Render(theme, doc, pagelayout.ClassDefault, 80, 10)

	assert.Equal(t, testutil.StripANSI(before), testutil.StripANSI(after))
}

func TestRender_IndexPage(t *testing.T) {
	doc := parse(t, `<html><head><title>Moo</title></head><body><ul><li><a href="/album/a">A</a></li></ul></body></html>`)
	out := testutil.StripANSI(Render(styles.T(false), doc, pagelayout.ClassDefault, 40, 5))
	lines := testutil.SplitLines(out)
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "Moo", strings.TrimSpace(lines[0]))
	assert.Equal(t, "A", strings.TrimSpace(lines[2]))
}

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, Render(styles.T(false), nil, pagelayout.ClassDefault, 0, 0))
	out := Render(styles.T(false), nil, pagelayout.ClassDefault, 4, 2)
	assert.Equal(t, "    \n    ", out)
}
