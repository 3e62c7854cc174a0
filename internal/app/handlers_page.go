// internal/app/handlers_page.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/moo/internal/clock"
	"github.com/llehouerou/moo/internal/errmsg"
	"github.com/llehouerou/moo/internal/navigate"
	"github.com/llehouerou/moo/internal/notify"
	"github.com/llehouerou/moo/internal/page"
	"github.com/llehouerou/moo/internal/playback"
	"github.com/llehouerou/moo/internal/player"
	"github.com/llehouerou/moo/internal/ui/headerbar"
	uilayout "github.com/llehouerou/moo/internal/ui/layout"
	"github.com/llehouerou/moo/internal/ui/playerbar"
)

// statusHeight is the status line under the player bar.
const statusHeight = 1

// navigate starts loading path. A later navigation supersedes this one.
func (m *Model) navigate(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	m.loadSeq++
	m.loading = path
	cmds := []tea.Cmd{m.loadCmd(m.loadSeq, path)}
	if !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// handlePageLoaded replaces the current page, like a browser navigation:
// the old page's audio stops and a new controller takes over.
func (m Model) handlePageLoaded(msg PageLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.loadSeq {
		return m, nil
	}
	m.loading = ""
	if msg.Err != nil {
		m.log.Error("load page", "path", msg.Path, "error", msg.Err)
		m.status = errmsg.FormatWith(errmsg.OpPageLoad, msg.Path, msg.Err)
		return m, nil
	}

	m.player.Stop()
	m.coverPending += m.cover.Clear()
	m.page = msg.Page
	m.pageSeq++
	m.track, m.art = "", ""
	m.status = ""

	doc := m.page.Doc
	var audio playback.Audio
	if player.HasAudio(doc) {
		audio = m.player
	}
	ctx, err := page.NewContext(doc, audio)
	if err != nil {
		// the page still renders; keys needing a malformed attribute do nothing
		m.log.Warn("page controls", "path", m.page.Path, "error", err)
		m.status = errmsg.Format(errmsg.OpPageParse, err)
	}
	m.ctl = page.New(ctx, m.opts)
	if m.ctl.Dark() != m.dark {
		m.ctl.ToggleDark()
	}
	m.applyLayout()
	clock.UpdateTime(doc, m.now())
	clock.UpdateWeather(doc, m.weatherText)

	m.log.Info("page loaded", "path", m.page.Path, "title", doc.Title())
	m.recordVisit()
	m.savePage()

	return m, m.fetchAudio(ctx)
}

// fetchAudio downloads the page's track and, on album pages, its cover.
func (m *Model) fetchAudio(ctx page.Context) tea.Cmd {
	src, ok := player.SourceOf(ctx.Doc)
	if !ok || m.cache == nil {
		return nil
	}
	u, err := m.client.Resolve(m.page.URL, src.Src)
	if err != nil {
		m.status = errmsg.FormatWith(errmsg.OpTrackDownload, src.Src, err)
		return nil
	}
	m.track = m.cache.Path(u)
	cmds := []tea.Cmd{m.fetchTrackCmd(m.pageSeq, u)}

	if ref, ok := navigate.New(ctx.Control).Cover(); ok {
		if cu, err := m.client.Resolve(nil, ref); err == nil {
			cmds = append(cmds, m.fetchCoverCmd(m.pageSeq, cu, m.track))
		}
	}
	return tea.Batch(cmds...)
}

func (m Model) handleTrackReady(msg TrackReadyMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.pageSeq {
		return m, nil
	}
	if msg.Err != nil {
		m.log.Error("download track", "error", msg.Err)
		m.status = errmsg.Format(errmsg.OpTrackDownload, msg.Err)
		return m, nil
	}
	m.track = msg.Path
	if err := m.player.Load(msg.Path, true); err != nil {
		m.log.Error("load track", "path", msg.Path, "error", err)
		m.status = errmsg.FormatWith(errmsg.OpPlaybackStart, msg.Path, err)
		return m, nil
	}
	m.playSeq.Store(int64(m.pageSeq))
	m.applyLayout()

	if m.cfg.NotificationsEnabled() {
		n := notify.ForTrack(m.player.TrackInfo(), m.page.Doc.Title())
		if err := m.tracker.TrackChanged(msg.Path, n); err != nil {
			m.log.Warn("notify", "error", err)
		}
	}
	return m, m.pruneCmd(m.track, m.art)
}

func (m Model) handleCoverReady(msg CoverReadyMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.pageSeq {
		return m, nil
	}
	if msg.Err != nil {
		// pages without a cover are common; nothing to show
		m.log.Debug("download cover", "error", msg.Err)
		return m, nil
	}
	m.art = msg.Path
	if !m.cover.Enabled() {
		return m, nil
	}
	return m, m.prepareCoverCmd(m.pageSeq, msg.Path)
}

// applyLayout classifies the page area in pixels.
func (m *Model) applyLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	w, h := m.cell.Pixels(m.width, m.contentHeight())
	m.class = m.ctl.ApplyLayout(w, h)
}

func (m Model) contentHeight() int {
	return uilayout.ContentHeight(m.height, uilayout.ContentOpts{
		HeaderHeight:    headerbar.Height,
		PlayerBarHeight: m.playerBarHeight(),
		StatusHeight:    statusHeight,
	})
}

func (m Model) playerBarHeight() int {
	if playerbar.NewState(m.player).Active() {
		return playerbar.Height
	}
	return 0
}
