// internal/app/commands.go
package app

import (
	"context"
	"net/url"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/moo/internal/clock"
	"github.com/llehouerou/moo/internal/playback"
	"github.com/llehouerou/moo/internal/stderr"
	"github.com/llehouerou/moo/internal/tags"
)

const (
	pageTimeout     = 30 * time.Second
	downloadTimeout = 5 * time.Minute
	weatherTimeout  = 10 * time.Second
)

// ClockTickCmd sends ClockTickMsg after clock.Interval.
func ClockTickCmd() tea.Cmd {
	return tea.Tick(clock.Interval, func(t time.Time) tea.Msg {
		return ClockTickMsg(t)
	})
}

// GlowCmd schedules a glow step for page seq.
func GlowCmd(seq int, s playback.GlowStep) tea.Cmd {
	return tea.Tick(s.Delay, func(time.Time) tea.Msg {
		return GlowMsg{Seq: seq, Step: s}
	})
}

// WatchStderr waits for a line captured from stderr.
func WatchStderr() tea.Cmd {
	return func() tea.Msg {
		return StderrMsg{Line: <-stderr.Messages}
	}
}

// watchFinishedCmd waits for the audio to end. Stopping the player does not
// count, so one watcher serves every page; the message is tagged with the
// page that started the track.
func (m Model) watchFinishedCmd() tea.Cmd {
	ch := m.player.FinishedChan()
	playing := m.playSeq
	return func() tea.Msg {
		<-ch
		return TrackFinishedMsg{Seq: int(playing.Load())}
	}
}

func (m Model) loadCmd(seq int, path string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pageTimeout)
		defer cancel()
		p, err := c.Load(ctx, path)
		return PageLoadedMsg{Seq: seq, Path: path, Page: p, Err: err}
	}
}

func (m Model) fetchTrackCmd(seq int, u *url.URL) tea.Cmd {
	cache := m.cache
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), downloadTimeout)
		defer cancel()
		path, err := cache.Fetch(ctx, u)
		return TrackReadyMsg{Seq: seq, Path: path, Err: err}
	}
}

// fetchCoverCmd stores the cover next to track.
func (m Model) fetchCoverCmd(seq int, u *url.URL, track string) tea.Cmd {
	cache := m.cache
	dest := filepath.Join(filepath.Dir(track), tags.CoverFilename)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pageTimeout)
		defer cancel()
		path, err := cache.FetchAs(ctx, u, dest)
		return CoverReadyMsg{Seq: seq, Path: path, Err: err}
	}
}

func (m Model) prepareCoverCmd(seq int, path string) tea.Cmd {
	r := m.cover
	return func() tea.Msg {
		s, err := r.Prepare(path)
		return CoverPreparedMsg{Seq: seq, Sequence: s, Err: err}
	}
}

func (m Model) fetchWeatherCmd() tea.Cmd {
	w := m.weather
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), weatherTimeout)
		defer cancel()
		text, err := w.Fetch(ctx)
		return WeatherMsg{Text: text, Err: err}
	}
}

// pruneCmd trims the cache, keeping the current page's files.
func (m Model) pruneCmd(keep ...string) tea.Cmd {
	cache := m.cache
	return func() tea.Msg {
		freed, err := cache.Prune(keep...)
		return CachePrunedMsg{Freed: freed, Desc: cache.Describe(), Err: err}
	}
}
