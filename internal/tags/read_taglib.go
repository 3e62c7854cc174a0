package tags

import (
	"path/filepath"
	"strconv"

	"go.senan.xyz/taglib"
)

// taglibTags is the property map TagLib returns.
type taglibTags map[string][]string

// first returns the first value of the first key present.
func (t taglibTags) first(keys ...string) string {
	for _, key := range keys {
		if values := t[key]; len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// pair reads a "N/M" property, taking M from totalKey when the pair has none.
func (t taglibTags) pair(key, totalKey string) (num, total int) {
	num, total = splitNumber(t.first(key))
	if total == 0 {
		total, _ = strconv.Atoi(t.first(totalKey))
	}
	return num, total
}

// readTaglib reads Vorbis comments and RIFF INFO chunks.
func readTaglib(path string) (*Tag, error) {
	raw, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	props := taglibTags(raw)

	track, totalTracks := props.pair(taglib.TrackNumber, "TOTALTRACKS")
	disc, totalDiscs := props.pair(taglib.DiscNumber, "TOTALDISCS")
	t := &Tag{
		Path:        path,
		Title:       props.first(taglib.Title),
		Artist:      props.first(taglib.Artist),
		AlbumArtist: props.first(taglib.AlbumArtist),
		Album:       props.first(taglib.Album),
		Genre:       props.first(taglib.Genre),
		Date:        props.first(taglib.Date, "YEAR"),
		TrackNumber: track,
		TotalTracks: totalTracks,
		DiscNumber:  disc,
		TotalDiscs:  totalDiscs,
	}
	return t.fill(filepath.Base(path)), nil
}
