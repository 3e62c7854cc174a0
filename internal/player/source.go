package player

import (
	"strings"

	"github.com/llehouerou/moo/internal/dom"
)

// mediaTypes maps encoding prefixes to the type announced in SOURCE
// elements. FLAC is served as audio/ogg on purpose.
var mediaTypes = []struct {
	prefix string
	mime   string
}{
	{"AAC", "audio/aac"},
	{"FLAC", "audio/ogg"},
	{"MP3", "audio/mp3"},
	{"MP4", "audio/mp4"},
	{"MPEG", "audio/mpeg"},
	{"OGG", "audio/ogg"},
	{"WAV", "audio/wav"},
}

// MediaType returns the media type for an encoding name such as "MP3" or
// "OggVorbis", or "" when unknown.
func MediaType(encoding string) string {
	enc := strings.ToUpper(encoding)
	for _, m := range mediaTypes {
		if strings.HasPrefix(enc, m.prefix) {
			return m.mime
		}
	}
	return ""
}

// Source is where the page's audio element gets its data.
type Source struct {
	Src  string
	Type string
}

// SourceOf finds the first AUDIO element and returns its src, falling back
// to its first SOURCE child.
func SourceOf(doc *dom.Document) (Source, bool) {
	if doc == nil {
		return Source{}, false
	}
	audio := doc.QuerySelector("audio")
	if audio == nil {
		return Source{}, false
	}
	if src, ok := audio.Attr("src"); ok && src != "" {
		return Source{Src: src, Type: audio.AttrOr("type", "")}, true
	}
	for _, child := range audio.ChildElements() {
		if child.Tag != "SOURCE" {
			continue
		}
		if src, ok := child.Attr("src"); ok && src != "" {
			return Source{Src: src, Type: child.AttrOr("type", "")}, true
		}
	}
	return Source{}, false
}

// HasAudio reports whether the page has an audio element, playable or not.
func HasAudio(doc *dom.Document) bool {
	return doc != nil && doc.QuerySelector("audio") != nil
}
