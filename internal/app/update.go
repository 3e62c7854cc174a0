// internal/app/update.go
package app

import (
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/moo/internal/clock"
	"github.com/llehouerou/moo/internal/errmsg"
	"github.com/llehouerou/moo/internal/ui/textinput"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.applyLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case MPRISKeyMsg:
		return m.handleCode(msg.Code)

	case textinput.ResultMsg:
		if msg.Canceled {
			return m, nil
		}
		cmd := m.navigate("/search/" + url.PathEscape(msg.Text))
		return m, cmd

	case PageLoadedMsg:
		return m.handlePageLoaded(msg)

	case TrackReadyMsg:
		return m.handleTrackReady(msg)

	case CoverReadyMsg:
		return m.handleCoverReady(msg)

	case CoverPreparedMsg:
		if msg.Seq != m.pageSeq {
			return m, nil
		}
		if msg.Err != nil {
			m.log.Debug("prepare cover", "error", msg.Err)
			return m, nil
		}
		m.coverPending += msg.Sequence
		return m, nil

	case TrackFinishedMsg:
		if msg.Seq != m.pageSeq {
			// the track ended after its page was left
			m.log.Debug("stale track end", "seq", msg.Seq, "page", m.pageSeq)
			return m, m.watchFinishedCmd()
		}
		cmd := m.navigate(m.ctl.Ended().Navigate)
		return m, tea.Batch(m.watchFinishedCmd(), cmd)

	case GlowMsg:
		if msg.Seq == m.pageSeq {
			m.ctl.ApplyGlow(msg.Step)
		}
		return m, nil

	case ClockTickMsg:
		// a sequence queued before the last tick has been written by now
		m.coverPending = ""
		if m.page != nil {
			clock.UpdateTime(m.page.Doc, m.now())
		}
		return m, ClockTickCmd()

	case WeatherMsg:
		if msg.Err != nil {
			// the widget stays blank; there is no retry
			m.log.Warn("fetch weather", "error", msg.Err)
			return m, nil
		}
		m.weatherText = strings.TrimSpace(msg.Text)
		if m.page != nil {
			clock.UpdateWeather(m.page.Doc, m.weatherText)
		}
		return m, nil

	case CachePrunedMsg:
		if msg.Err != nil {
			m.log.Warn("prune cache", "error", msg.Err)
			m.status = errmsg.Format(errmsg.OpCachePrune, msg.Err)
		} else if msg.Freed > 0 {
			m.log.Info("pruned cache", "freed", msg.Freed)
		}
		m.cacheDesc = msg.Desc
		return m, nil

	case StderrMsg:
		m.status = msg.Line
		return m, WatchStderr()

	case spinner.TickMsg:
		if m.loading == "" {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}
