// internal/app/view_test.go
package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/moo/internal/ui/testutil"
)

func TestView_BeforeSize(t *testing.T) {
	env := newEnv(t)
	assert.Empty(t, env.model().View())
}

func TestView_Loading(t *testing.T) {
	env := newEnv(t)
	m, _ := update(t, env.model(), tea.WindowSizeMsg{Width: 100, Height: 20})

	view := testutil.StripANSI(m.View())
	first := strings.Split(view, "\n")[0]
	assert.Contains(t, first, "moo")
	assert.Contains(t, first, "9:05 PM")
	assert.Contains(t, first, " /", "the path being loaded is shown")
}

func TestView_Album(t *testing.T) {
	env := newEnv(t)
	m, _ := update(t, env.model(), tea.WindowSizeMsg{Width: 100, Height: 20})
	m = load(t, m, albumPath)

	view := testutil.StripANSI(m.View())
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 20)
	assert.Contains(t, lines[0], albumPath)
	assert.Contains(t, view, "Kind of Blue")
	assert.Contains(t, view, "Freddie Freeloader")
	assert.Contains(t, lines[len(lines)-1], "space play/pause")

	m, _ = update(t, m, key("h"))
	view = testutil.StripANSI(m.View())
	lines = strings.Split(view, "\n")
	assert.Contains(t, lines[len(lines)-1], "Failed to toggle panel")
}

func TestView_Prompt(t *testing.T) {
	env := newEnv(t)
	m, _ := update(t, env.model(), tea.WindowSizeMsg{Width: 80, Height: 20})
	m = load(t, m, "/")
	m, _ = update(t, m, key("/"))

	view := testutil.StripANSI(m.View())
	lines := strings.Split(view, "\n")
	assert.Contains(t, lines[len(lines)-1], "Search")
}

func TestView_KeyTable(t *testing.T) {
	env := newEnv(t)
	m, _ := update(t, env.model(), tea.WindowSizeMsg{Width: 100, Height: 40})
	m = load(t, m, albumPath)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, m.keys.Active())
	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "Play/pause")

	m, _ = update(t, m, key("n"))
	assert.Empty(t, m.loading, "the key table takes keys while open")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.keys.Active())
}
