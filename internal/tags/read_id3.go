package tags

import (
	"path/filepath"

	"github.com/bogem/id3v2/v2"
)

// readID3v2 reads an ID3-tagged file with the id3v2 library alone.
func readID3v2(path string) (*Tag, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	track, totalTracks := splitNumber(id3Text(id3tag, "TRCK"))
	disc, totalDiscs := splitNumber(id3Text(id3tag, "TPOS"))
	t := &Tag{
		Path:        path,
		Title:       id3tag.Title(),
		Artist:      id3tag.Artist(),
		AlbumArtist: id3Text(id3tag, "TPE2"),
		Album:       id3tag.Album(),
		Genre:       id3tag.Genre(),
		Date:        id3Date(id3tag),
		TrackNumber: track,
		TotalTracks: totalTracks,
		DiscNumber:  disc,
		TotalDiscs:  totalDiscs,
	}
	return t.fill(filepath.Base(path)), nil
}

// refineID3Date replaces the bare year dhowden/tag reports with the full
// recording date when the file has one.
func refineID3Date(path string, t *Tag) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return
	}
	defer id3tag.Close()
	if date := id3Date(id3tag); date != "" {
		t.Date = date
	}
}

// id3Date reads TDRC (v2.4), then TYER with TDAT (v2.3).
func id3Date(id3tag *id3v2.Tag) string {
	if date := id3Text(id3tag, "TDRC"); date != "" {
		return date
	}
	year := id3Text(id3tag, "TYER")
	if year == "" {
		return ""
	}
	// TDAT is DDMM
	if tdat := id3Text(id3tag, "TDAT"); len(tdat) == 4 {
		return year + "-" + tdat[2:] + "-" + tdat[:2]
	}
	return year
}

func id3Text(id3tag *id3v2.Tag, id string) string {
	for _, f := range id3tag.GetFrames(id) {
		if tf, ok := f.(id3v2.TextFrame); ok {
			return tf.Text
		}
	}
	return ""
}
