// internal/app/keys.go
package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/moo/internal/errmsg"
	"github.com/llehouerou/moo/internal/keymap"
	"github.com/llehouerou/moo/internal/panel"
)

// volumeStep is the change per volume key press.
const volumeStep = 0.05

// handleKeyMsg routes terminal keys. The prompt and the key table take
// every key while open; otherwise keys are translated to KeyboardEvent
// codes for the page.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.prompt.Active():
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	case m.keys.Active():
		m.keys, cmd = m.keys.Update(msg)
		return m, cmd
	}

	key := msg.String()
	switch key {
	case "ctrl+c":
		return m.quit()
	case "esc":
		m.status = ""
		return m, nil
	case "+", "=":
		m.changeVolume(volumeStep)
		return m, nil
	case "-", "_":
		m.changeVolume(-volumeStep)
		return m, nil
	}

	code := keymap.CodeForKey(key)
	if code == "" {
		return m, nil
	}
	return m.handleCode(code)
}

// handleCode dispatches a KeyboardEvent code to the current page. Media keys
// arrive here too.
func (m Model) handleCode(code string) (tea.Model, tea.Cmd) {
	eff, err := m.ctl.HandleKey(code)
	if err != nil {
		m.status = m.keyError(eff.Action, err)
		return m, nil
	}

	switch eff.Action {
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionSearch:
		cmd := m.prompt.Start("Search", "artist, album or title", m.width)
		return m, cmd
	case keymap.ActionKeys:
		m.keys.Open(m.height)
		return m, nil
	case keymap.ActionDark:
		m.dark = m.ctl.Dark()
		m.savePage()
	}

	cmds := make([]tea.Cmd, 0, len(eff.Glow)+1)
	for _, s := range eff.Glow {
		cmds = append(cmds, GlowCmd(m.pageSeq, s))
	}
	cmds = append(cmds, m.navigate(eff.Navigate))
	return m, tea.Batch(cmds...)
}

// keyError words a failed key for the status line. A failed toggle leaves
// the player as it was.
func (m Model) keyError(action keymap.Action, err error) string {
	switch {
	case errors.Is(err, panel.ErrNoElement):
		return errmsg.Format(errmsg.OpPanelToggle, err)
	case action == keymap.ActionPlayPause && !m.player.Paused():
		return errmsg.Format(errmsg.OpPlaybackPause, err)
	case action == keymap.ActionPlayPause:
		return errmsg.Format(errmsg.OpPlaybackStart, err)
	}
	return err.Error()
}

func (m *Model) changeVolume(delta float64) {
	m.player.SetVolume(m.player.Volume() + delta)
	m.savePage()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.savePage()
	m.player.Stop()
	return m, tea.Quit
}
