// Package helpbindings provides a scrollable overlay listing the key table.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/moo/internal/keymap"
	"github.com/llehouerou/moo/internal/ui/styles"
)

// categoryLabels maps binding contexts to display labels.
var categoryLabels = map[string]string{
	"navigation": "Navigation",
	"playback":   "Playback",
	"tracks":     "Tracks",
	"panels":     "Panels",
	"page":       "Page",
	"host":       "Player",
}

// keyLabels names codes that do not read well as typed.
var keyLabels = map[string]string{
	"ArrowUp":    "↑",
	"ArrowDown":  "↓",
	"ArrowLeft":  "←",
	"ArrowRight": "→",
	"Space":      "space",
	"Slash":      "/",
	"Home":       "home",
	"F1":         "F1",
}

// chrome is the title, blank lines, footer and border around the list.
const chrome = 6

// Model holds the state of the key table overlay.
type Model struct {
	bindings     []keymap.Binding
	active       bool
	height       int
	scrollOffset int
}

// New creates a closed overlay over bindings, grouped in help order.
func New(bindings []keymap.Binding) Model {
	var ordered []keymap.Binding
	for _, ctx := range keymap.Contexts {
		for _, b := range bindings {
			if b.Context == ctx {
				ordered = append(ordered, b)
			}
		}
	}
	return Model{bindings: ordered}
}

// Open shows the overlay for a window of the given height.
func (m *Model) Open(height int) {
	m.active = true
	m.height = height
	m.scrollOffset = 0
}

// Active reports whether the overlay takes key input.
func (m Model) Active() bool {
	return m.active
}

// Update handles keys while the overlay is open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !m.active || !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "f1", "esc", "q":
		m.active = false
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// KeyLabel returns how a KeyboardEvent code is shown: "n" for KeyN, "1"
// for Digit1.
func KeyLabel(code string) string {
	if l, ok := keyLabels[code]; ok {
		return l
	}
	if s, ok := strings.CutPrefix(code, "Key"); ok {
		return strings.ToLower(s)
	}
	if s, ok := strings.CutPrefix(code, "Digit"); ok {
		return s
	}
	return code
}

func (m Model) lines(t *styles.Theme) []string {
	keyStyle := t.S().Playing
	headerStyle := t.S().Title

	keys := make([]string, len(m.bindings))
	maxKeyWidth := 0
	for i, b := range m.bindings {
		labels := make([]string, len(b.Keys))
		for j, k := range b.Keys {
			labels[j] = KeyLabel(k)
		}
		keys[i] = strings.Join(labels, ", ")
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(keys[i]))
	}

	var lines []string
	current := ""
	for i, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines, headerStyle.Render(label))
			current = b.Context
		}
		pad := strings.Repeat(" ", maxKeyWidth-lipgloss.Width(keys[i]))
		lines = append(lines, keyStyle.Render(keys[i])+pad+"  "+t.S().Base.Render(b.Description))
	}
	return lines
}

func (m Model) visibleHeight() int {
	return max(m.height-chrome, 1)
}

func (m Model) maxScroll() int {
	return max(len(m.lines(styles.T(false)))-m.visibleHeight(), 0)
}

// View renders the overlay box, or "" when closed.
func (m Model) View(t *styles.Theme) string {
	if !m.active {
		return ""
	}
	lines := m.lines(t)
	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))

	footer := "esc close"
	if m.maxScroll() > 0 {
		footer = "j/k scroll · " + footer
	}

	var sb strings.Builder
	sb.WriteString(t.S().Title.Render("Keys"))
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(lines[start:end], "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(t.S().Subtle.Render(footer))
	return t.S().Panel.Render(sb.String())
}
