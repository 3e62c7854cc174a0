// Package playerbar renders the transport line below the page.
package playerbar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/moo/internal/icons"
	"github.com/llehouerou/moo/internal/player"
	"github.com/llehouerou/moo/internal/ui/render"
	"github.com/llehouerou/moo/internal/ui/styles"
)

// Height is the player bar height: top border, content, bottom border.
const Height = 3

// State holds everything needed to render the player bar.
type State struct {
	Playing     bool
	Paused      bool
	Track       int
	TotalTracks int
	Disc        int
	TotalDiscs  int
	Title       string
	Artist      string
	Album       string
	Year        int
	Position    time.Duration
	Duration    time.Duration
	Volume      float64
}

// NewState reads the player. It returns an empty State when nothing is
// loaded.
func NewState(p player.Interface) State {
	if p == nil || p.State() == player.Stopped {
		return State{}
	}
	info := p.TrackInfo()
	if info == nil {
		return State{}
	}
	return State{
		Playing:     p.State() == player.Playing,
		Paused:      p.State() == player.Paused,
		Track:       info.TrackNumber,
		TotalTracks: info.TotalTracks,
		Disc:        info.DiscNumber,
		TotalDiscs:  info.TotalDiscs,
		Title:       info.Title,
		Artist:      info.Artist,
		Album:       info.Album,
		Year:        info.Year(),
		Position:    p.Position(),
		Duration:    p.Duration(),
		Volume:      p.Volume(),
	}
}

// Active reports whether there is anything to show.
func (s State) Active() bool {
	return s.Playing || s.Paused
}

// Render returns the player bar for the given width, or "" when inactive.
func Render(t *styles.Theme, s State, width int) string {
	if !s.Active() {
		return ""
	}
	// border and padding
	inner := max(width-4, 0)

	status := icons.Play()
	if s.Paused {
		status = icons.Pause()
	}

	title := s.Title
	if title == "" {
		title = "Unknown Track"
	}
	info := joinNonEmpty(" · ", s.Artist, s.Album, yearString(s.Year))
	trackNum := trackNumber(s)
	timeStr := FormatDuration(s.Position) + " / " + FormatDuration(s.Duration)
	volume := RenderVolume(t, s.Volume)

	const sep = "   "
	fixed := ansi.StringWidth(status) + len(sep) + ansi.StringWidth(timeStr) +
		len(sep) + ansi.StringWidth(volume) + len(sep) + minBarWidth*2
	if trackNum != "" {
		fixed += ansi.StringWidth(trackNum) + len(sep)
	}
	room := max(inner-fixed, 0)

	var left string
	switch titleW, infoW := ansi.StringWidth(title), ansi.StringWidth(info); {
	case info != "" && titleW+len(sep)+infoW <= room:
		left = titleStyle(t).Render(title) + sep + infoStyle(t).Render(info)
	case info != "" && titleW+len(sep)+minBarWidth <= room:
		left = titleStyle(t).Render(title) + sep +
			infoStyle(t).Render(render.TruncateEllipsis(info, room-titleW-len(sep)))
	default:
		left = titleStyle(t).Render(render.TruncateEllipsis(title, max(room, minBarWidth)))
	}
	if trackNum != "" {
		left += sep + metaStyle(t).Render(trackNum)
	}

	barWidth := max(inner-ansi.StringWidth(left)-ansi.StringWidth(status)-
		ansi.StringWidth(timeStr)-ansi.StringWidth(volume)-len(sep)*4, minBarWidth)

	var b strings.Builder
	b.WriteString(left)
	b.WriteString(sep)
	b.WriteString(status)
	b.WriteString(" ")
	b.WriteString(RenderProgressBar(t, s.Position, s.Duration, barWidth))
	b.WriteString(sep)
	b.WriteString(metaStyle(t).Render(timeStr))
	b.WriteString(sep)
	b.WriteString(volume)

	return barStyle(t).Width(max(width-2, 0)).Render(render.TruncateEllipsis(b.String(), inner))
}

// trackNumber renders "Disc 1/2 · 3/12", "3/12" or "3".
func trackNumber(s State) string {
	var parts []string
	if s.TotalDiscs > 1 {
		parts = append(parts, fmt.Sprintf("Disc %d/%d", s.Disc, s.TotalDiscs))
	}
	switch {
	case s.Track > 0 && s.TotalTracks > 0:
		parts = append(parts, fmt.Sprintf("%d/%d", s.Track, s.TotalTracks))
	case s.Track > 0:
		parts = append(parts, strconv.Itoa(s.Track))
	}
	return strings.Join(parts, " · ")
}

func yearString(y int) string {
	if y <= 0 {
		return ""
	}
	return strconv.Itoa(y)
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
