package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/moo/internal/dom"
)

func TestMediaType(t *testing.T) {
	tests := []struct {
		encoding string
		want     string
	}{
		{"MP3", "audio/mp3"},
		{"mp3", "audio/mp3"},
		{"FLAC", "audio/ogg"},
		{"OggVorbis", "audio/ogg"},
		{"MP4", "audio/mp4"},
		{"MPEGInfo", "audio/mpeg"},
		{"AAC", "audio/aac"},
		{"WAVE", "audio/wav"},
		{"APEv2", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.encoding, func(t *testing.T) {
			assert.Equal(t, tt.want, MediaType(tt.encoding))
		})
	}
}

func TestSourceOf(t *testing.T) {
	tests := []struct {
		name string
		html string
		want Source
		ok   bool
	}{
		{
			name: "src attribute",
			html: `<audio src="/static/a/01.mp3" autoplay></audio>`,
			want: Source{Src: "/static/a/01.mp3"},
			ok:   true,
		},
		{
			name: "source child",
			html: `<audio controls><source src="/static/a/01.flac" type="audio/ogg"></audio>`,
			want: Source{Src: "/static/a/01.flac", Type: "audio/ogg"},
			ok:   true,
		},
		{
			name: "empty audio",
			html: `<audio></audio>`,
		},
		{
			name: "no audio",
			html: `<p>index</p>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := dom.ParseString(`<html><body>` + tt.html + `</body></html>`)
			require.NoError(t, err)
			got, ok := SourceOf(doc)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := SourceOf(nil)
	assert.False(t, ok)
}

func TestHasAudio(t *testing.T) {
	doc, err := dom.ParseString(`<body><audio></audio></body>`)
	require.NoError(t, err)
	assert.True(t, HasAudio(doc))
	assert.False(t, HasAudio(dom.NewDocument()))
}
