// Package tags reads the metadata of downloaded Moo tracks: MP3, FLAC,
// Ogg Vorbis and WAV, the formats the player decodes.
package tags

import (
	"strconv"
	"strings"
)

// Tag is the subset of track metadata shown by the player.
type Tag struct {
	Path        string
	Title       string
	Artist      string
	AlbumArtist string
	Album       string
	Genre       string

	TrackNumber int
	TotalTracks int
	DiscNumber  int
	TotalDiscs  int

	Date string // YYYY-MM-DD or YYYY
}

// Year is the leading year of Date, or 0.
func (t *Tag) Year() int {
	year, _, _ := strings.Cut(t.Date, "-")
	if len(year) > 4 {
		year = year[:4]
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return 0
	}
	return y
}

// Display returns "Artist - Title", or just the title when the artist is unknown.
func (t *Tag) Display() string {
	if t.Artist == "" {
		return t.Title
	}
	return t.Artist + " - " + t.Title
}

// Number renders the track position as "3/5", "3" or "".
func (t *Tag) Number() string {
	switch {
	case t.TrackNumber == 0:
		return ""
	case t.TotalTracks == 0:
		return strconv.Itoa(t.TrackNumber)
	default:
		return strconv.Itoa(t.TrackNumber) + "/" + strconv.Itoa(t.TotalTracks)
	}
}

// splitNumber parses "5" or "5/10".
func splitNumber(s string) (num, total int) {
	n, t, ok := strings.Cut(strings.TrimSpace(s), "/")
	num, _ = strconv.Atoi(n)
	if ok {
		total, _ = strconv.Atoi(t)
	}
	return num, total
}

// fill applies the defaults every reader shares: the file name stands in
// for a missing title and the artist for a missing album artist.
func (t *Tag) fill(name string) *Tag {
	if t.Title == "" {
		t.Title = name
	}
	if t.AlbumArtist == "" {
		t.AlbumArtist = t.Artist
	}
	return t
}
