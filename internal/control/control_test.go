package control

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/moo/internal/dom"
)

func TestParse_Album(t *testing.T) {
	d, err := Parse(Attrs{
		"ntracks": "12",
		"next":    "4",
		"prev":    "2",
		"alkey":   "/music/a/b",
		"rtrack":  "7",
		"ralbum":  "music/c/d",
	})
	require.NoError(t, err)

	assert.Equal(t, 12, d.NTracks)
	assert.Equal(t, 4, d.Next)
	assert.Equal(t, 2, d.Prev)
	assert.Equal(t, "/music/a/b", d.AlKey)
	assert.Equal(t, 7, d.RTrack)
	assert.Equal(t, "music/c/d", d.RAlbum)
	assert.Equal(t, ModePlay, d.Mode)
	assert.Equal(t, KindAlbum, d.Kind())
}

func TestParse_Playlist(t *testing.T) {
	d, err := Parse(Attrs{
		"ntracks": "5",
		"index":   "2",
		"mode":    "shuffle",
		"name":    "jazz",
		"shuffle": "[3, 1, 5]",
	})
	require.NoError(t, err)

	assert.Equal(t, KindPlaylist, d.Kind())
	assert.Equal(t, ModeShuffle, d.Mode)
	assert.Equal(t, 2, d.Index)
	assert.Equal(t, []int{3, 1, 5}, d.Shuffle)
}

func TestParse_AbsentNeighbours(t *testing.T) {
	d, err := Parse(Attrs{"ntracks": "3", "next": "", "alkey": "k"})
	require.NoError(t, err)
	assert.Zero(t, d.Next)
	assert.Zero(t, d.Prev)
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attrs
		bad   []string
	}{
		{"non-integer ntracks", Attrs{"ntracks": "ten"}, []string{"ntracks"}},
		{"negative prev", Attrs{"ntracks": "3", "prev": "-1"}, []string{"prev"}},
		{"next beyond ntracks", Attrs{"ntracks": "3", "next": "4"}, []string{"next"}},
		{"unknown mode", Attrs{"ntracks": "3", "mode": "loop"}, []string{"mode"}},
		{"bad shuffle", Attrs{"ntracks": "3", "shuffle": "[1, \"x\"]"}, []string{"shuffle"}},
		{
			"several",
			Attrs{"ntracks": "2", "next": "x", "index": "9", "mode": "?"},
			[]string{"next", "mode", "index"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.attrs)
			require.Error(t, err)
			require.NotNil(t, d)

			var got []string
			for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
				var verr *ValidationError
				require.ErrorAs(t, e, &verr)
				got = append(got, verr.Attr)
			}
			assert.ElementsMatch(t, tt.bad, got)
		})
	}
}

func TestParse_KeepsWellFormedFields(t *testing.T) {
	d, err := Parse(Attrs{
		"ntracks": "10",
		"next":    "3",
		"prev":    "11",
		"alkey":   "/A/B",
		"rtrack":  "4",
		"mode":    "loop",
		"shuffle": "oops",
	})
	require.Error(t, err)
	require.NotNil(t, d)

	assert.Equal(t, 10, d.NTracks)
	assert.Equal(t, 3, d.Next)
	assert.Equal(t, 0, d.Prev, "out of range prev is dropped")
	assert.Equal(t, "/A/B", d.AlKey)
	assert.Equal(t, 4, d.RTrack)
	assert.Equal(t, ModePlay, d.Mode)
	assert.Nil(t, d.Shuffle)
}

func TestValidationError_Unwrap(t *testing.T) {
	_, err := Parse(Attrs{"ntracks": "1", "next": "2"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errOutOfRange))
	assert.Contains(t, err.Error(), `next="2"`)
}

func TestPopShuffle(t *testing.T) {
	d := &Descriptor{Shuffle: []int{4, 2}}

	v, ok := d.PopShuffle()
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = d.PopShuffle()
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = d.PopShuffle()
	assert.False(t, ok)
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModePlay, ModeRepeat, ModeShuffle} {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMode("random")
	assert.Error(t, err)
}

func TestFromDocument(t *testing.T) {
	t.Run("album with track fallback", func(t *testing.T) {
		doc, err := dom.ParseString(`<body>
			<div id="control" ntracks="8" next="3" prev="1" ralbum="x/y"></div>
			<span id="track" alkey="/m/album" rtrack="6"></span></body>`)
		require.NoError(t, err)

		d, err := FromDocument(doc)
		require.NoError(t, err)
		assert.Equal(t, "/m/album", d.AlKey)
		assert.Equal(t, 6, d.RTrack)
		assert.Equal(t, "x/y", d.RAlbum)
	})

	t.Run("control wins over track", func(t *testing.T) {
		doc, err := dom.ParseString(`<body>
			<div id="control" ntracks="8" alkey="/from/control"></div>
			<span id="track" alkey="/from/track"></span></body>`)
		require.NoError(t, err)

		d, err := FromDocument(doc)
		require.NoError(t, err)
		assert.Equal(t, "/from/control", d.AlKey)
	})

	t.Run("playlist control", func(t *testing.T) {
		doc, err := dom.ParseString(`<body>
			<div id="playlist-control" ntracks="4" index="4" mode="repeat" name="mix"></div></body>`)
		require.NoError(t, err)

		d, err := FromDocument(doc)
		require.NoError(t, err)
		assert.Equal(t, KindPlaylist, d.Kind())
		assert.Equal(t, ModeRepeat, d.Mode)
	})

	t.Run("no control", func(t *testing.T) {
		doc, err := dom.ParseString(`<body><p>index</p></body>`)
		require.NoError(t, err)

		_, err = FromDocument(doc)
		assert.ErrorIs(t, err, ErrNoControl)
	})

	t.Run("invalid control", func(t *testing.T) {
		doc, err := dom.ParseString(`<body><div id="control" ntracks="x" alkey="/a"></div></body>`)
		require.NoError(t, err)

		d, err := FromDocument(doc)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		require.NotNil(t, d)
		assert.Equal(t, "/a", d.AlKey)
	})
}
