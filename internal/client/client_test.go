package client

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const albumPage = `<html><head><title>Kind of Blue</title></head><body>
<div id="control" ntracks="5" next="2" alkey="/Miles Davis/Kind of Blue"></div>
<audio src="/static/Miles Davis/01.mp3"></audio></body></html>`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, `<html><body><p id="index">index</p></body></html>`)
	})
	e.GET("/album/*", func(c echo.Context) error {
		return c.HTML(http.StatusOK, albumPage)
	})
	e.GET("/random", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/album/Miles%20Davis/Kind%20of%20Blue")
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "boom")
	})
	e.GET("/static/*", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "audio/mp3", []byte("ID3fake-audio"))
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func TestNew(t *testing.T) {
	c, err := New("http://localhost:5000")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/", c.Base())

	_, err = New("ftp://example.com")
	assert.Error(t, err)

	_, err = New("://bad")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	srv := newServer(t)
	c, err := New(srv.URL)
	require.NoError(t, err)

	p, err := c.Load(context.Background(), "/album/Miles%20Davis/Kind%20of%20Blue")
	require.NoError(t, err)
	assert.Equal(t, "/album/Miles%20Davis/Kind%20of%20Blue", p.Path)
	assert.Equal(t, "Kind of Blue", p.Doc.Title())
	require.NotNil(t, p.Doc.GetElementByID("control"))
}

func TestLoad_FollowsRedirect(t *testing.T) {
	srv := newServer(t)
	c, err := New(srv.URL)
	require.NoError(t, err)

	p, err := c.Load(context.Background(), "/random")
	require.NoError(t, err)
	assert.Equal(t, "/album/Miles%20Davis/Kind%20of%20Blue", p.Path)
}

func TestLoad_Errors(t *testing.T) {
	srv := newServer(t)
	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.Load(context.Background(), "/nowhere")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Load(context.Background(), "/boom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Load(ctx, "/")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveAndDownload(t *testing.T) {
	srv := newServer(t)
	c, err := New(srv.URL)
	require.NoError(t, err)

	p, err := c.Load(context.Background(), "/album/x")
	require.NoError(t, err)

	src, _ := p.Doc.QuerySelector("audio").Attr("src")
	u, err := c.Resolve(p.URL, src)
	require.NoError(t, err)
	assert.Equal(t, "/static/Miles Davis/01.mp3", u.Path)

	var buf bytes.Buffer
	n, err := c.Download(context.Background(), u, &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len("ID3fake-audio")), n)
	assert.Equal(t, "ID3fake-audio", buf.String())
}

func TestResolve_BasePath(t *testing.T) {
	c, err := New("http://music.local/moo")
	require.NoError(t, err)

	u, err := c.Resolve(nil, "/track/1/a")
	require.NoError(t, err)
	assert.Equal(t, "http://music.local/moo/track/1/a", u.String())

	assert.Equal(t, "/track/1/a", c.relative(u))
}
