// internal/app/persistence.go
package app

import (
	"github.com/llehouerou/moo/internal/errmsg"
	"github.com/llehouerou/moo/internal/state"
)

// restore applies the saved page state: dark mode and volume always, the
// page itself only when resuming.
func (m *Model) restore() {
	saved, err := m.state.GetPage()
	if err != nil {
		m.log.Warn("load page state", "error", err)
		m.status = errmsg.Format(errmsg.OpStateLoad, err)
		return
	}
	if saved == nil {
		return
	}
	m.dark = saved.Dark
	m.player.SetVolume(saved.Volume)
	if m.cfg.ResumeEnabled() && saved.Path != "" {
		m.startPath = saved.Path
	}
}

// savePage persists the current page, dark mode and volume.
func (m *Model) savePage() {
	if m.page == nil {
		return
	}
	m.state.SavePage(state.PageState{
		Path:   m.page.Path,
		Dark:   m.dark,
		Volume: m.player.Volume(),
	})
}

// recordVisit appends the page to the visit history.
func (m *Model) recordVisit() {
	if err := m.state.AddHistory(m.page.Path, m.page.Doc.Title()); err != nil {
		m.log.Warn("add history", "path", m.page.Path, "error", err)
		m.status = errmsg.FormatWith(errmsg.OpHistorySave, m.page.Path, err)
	}
}
