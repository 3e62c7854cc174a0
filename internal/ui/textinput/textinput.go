// Package textinput provides the one-line prompt used to search the server.
package textinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/moo/internal/ui/styles"
)

// ResultMsg is sent when the prompt is confirmed or canceled.
type ResultMsg struct {
	Text     string
	Canceled bool
}

// Model is a one-line prompt.
type Model struct {
	title  string
	input  textinput.Model
	active bool
}

// New creates an inactive prompt.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200
	return Model{input: ti}
}

// Start activates the prompt with a title and placeholder.
func (m *Model) Start(title, placeholder string, width int) tea.Cmd {
	m.title = title
	m.active = true
	m.input.Placeholder = placeholder
	m.input.Width = max(width-len(m.input.Prompt)-1, 10)
	m.input.SetValue("")
	return m.input.Focus()
}

// Active reports whether the prompt takes key input.
func (m Model) Active() bool {
	return m.active
}

// Update handles a message while the prompt is active.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.stop()
			return m, func() tea.Msg { return ResultMsg{Canceled: true} }
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			m.stop()
			return m, func() tea.Msg { return ResultMsg{Text: text, Canceled: text == ""} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stop() {
	m.active = false
	m.input.Blur()
}

// View renders the prompt line, or "" when inactive.
func (m Model) View(t *styles.Theme) string {
	if !m.active {
		return ""
	}
	return t.S().Playing.Render(m.title) + " " + m.input.View()
}
