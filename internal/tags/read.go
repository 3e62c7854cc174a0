package tags

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dhowden/tag"
)

// Read reads the tags of a track. The cache keeps the server's file names,
// which do not always carry an extension, so the container is identified
// from the content. dhowden/tag is tried first; ID3 files it rejects go to
// id3v2 and everything else to TagLib.
func Read(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err == nil {
		t := fromMetadata(m).fill(filepath.Base(path))
		t.Path = path
		if isID3v2(m.Format()) {
			refineID3Date(path, t)
		}
		return t, nil
	}

	if _, serr := f.Seek(0, io.SeekStart); serr != nil {
		return nil, serr
	}
	if format, _, ierr := tag.Identify(f); ierr == nil && isID3v2(format) {
		// dhowden/tag chokes on some UTF-16 frames
		return readID3v2(path)
	}

	t, terr := readTaglib(path)
	if terr != nil {
		return nil, fmt.Errorf("read tags of %s: %w", filepath.Base(path), errors.Join(err, terr))
	}
	return t, nil
}

func fromMetadata(m tag.Metadata) *Tag {
	track, totalTracks := m.Track()
	disc, totalDiscs := m.Disc()
	t := &Tag{
		Title:       m.Title(),
		Artist:      m.Artist(),
		AlbumArtist: m.AlbumArtist(),
		Album:       m.Album(),
		Genre:       m.Genre(),
		TrackNumber: track,
		TotalTracks: totalTracks,
		DiscNumber:  disc,
		TotalDiscs:  totalDiscs,
	}
	if y := m.Year(); y != 0 {
		t.Date = strconv.Itoa(y)
	}
	return t
}

func isID3v2(f tag.Format) bool {
	return f == tag.ID3v2_2 || f == tag.ID3v2_3 || f == tag.ID3v2_4
}
