package player

import (
	"context"
	"errors"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDownloader struct {
	body  string
	err   error
	calls int
}

func (f *fakeDownloader) Download(_ context.Context, _ *url.URL, w io.Writer) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	n, err := io.Copy(w, strings.NewReader(f.body))
	return n, err
}

func mustURL(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	require.NoError(t, err)
	return u
}

func TestCache_Path(t *testing.T) {
	c := NewCache("/cache", 0, nil)
	tests := []struct {
		url  string
		want string
	}{
		{"http://moo/static/Miles%20Davis/01.mp3", "/cache/static/Miles Davis/01.mp3"},
		{"http://moo/../../etc/passwd", "/cache/etc/passwd"},
		{"http://moo/img/Coltrane/Ballads", "/cache/img/Coltrane/Ballads"},
	}
	for _, tt := range tests {
		assert.Equal(t, filepath.FromSlash(tt.want), c.Path(mustURL(t, tt.url)))
	}
}

func TestCache_Fetch(t *testing.T) {
	dl := &fakeDownloader{body: "audio-bytes"}
	c := NewCache(t.TempDir(), 0, dl)
	u := mustURL(t, "http://moo/static/a/01.mp3")

	p, err := c.Fetch(context.Background(), u)
	require.NoError(t, err)
	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "audio-bytes", string(data))

	// second fetch is served from disk
	_, err = c.Fetch(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, 1, dl.calls)

	size, err := c.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(len("audio-bytes")), size)
	assert.Equal(t, "11 B cached", c.Describe())
}

func TestCache_FetchError(t *testing.T) {
	boom := errors.New("boom")
	dir := t.TempDir()
	c := NewCache(dir, 0, &fakeDownloader{err: boom})

	_, err := c.Fetch(context.Background(), mustURL(t, "http://moo/static/a/01.mp3"))
	require.ErrorIs(t, err, boom)

	entries, err := os.ReadDir(filepath.Join(dir, "static", "a"))
	require.NoError(t, err)
	assert.Empty(t, entries, "partial download removed")
}

func TestCache_Prune(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir, 10, nil)

	old := time.Now().Add(-time.Hour)
	var paths []string
	for i, name := range []string{"a", "b", "c"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("12345"), 0o600))
		mt := old.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, mt, mt))
		paths = append(paths, p)
	}

	freed, err := c.Prune(paths[0])
	require.NoError(t, err)
	assert.Equal(t, int64(5), freed)

	_, err = os.Stat(paths[0])
	assert.NoError(t, err, "kept file survives")
	_, err = os.Stat(paths[1])
	assert.True(t, os.IsNotExist(err), "oldest unkept file removed")
	_, err = os.Stat(paths[2])
	assert.NoError(t, err)
}

func TestCache_PruneDisabledAndMissingDir(t *testing.T) {
	c := NewCache(filepath.Join(t.TempDir(), "missing"), 0, nil)
	freed, err := c.Prune()
	require.NoError(t, err)
	assert.Zero(t, freed)

	size, err := c.Size()
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0 B", FormatSize(-5))
	assert.Equal(t, "1.5 MB", FormatSize(1_500_000))
}
