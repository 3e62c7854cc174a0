// Package client loads Moo pages and their audio from a Moo server.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/llehouerou/moo/internal/dom"
)

// ErrNotFound is returned when the server has no such page or file.
var ErrNotFound = errors.New("not found")

const (
	userAgent = "moo-player/0.3 (https://github.com/llehouerou/moo)"

	maxPageSize = 8 << 20
)

// Client is a Moo server client.
type Client struct {
	httpClient *http.Client
	base       *url.URL
}

// New creates a client for the server at baseURL.
func New(baseURL string) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("server url %q: scheme must be http or https", baseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		base: base,
	}, nil
}

// Base returns the server URL.
func (c *Client) Base() string {
	return c.base.String()
}

// Page is a loaded page.
type Page struct {
	Path string   // path after redirects, relative to the server
	URL  *url.URL // absolute URL after redirects
	Doc  *dom.Document
}

// Resolve turns a page path or element reference into an absolute URL.
// Relative references resolve against from, or the server root when nil.
func (c *Client) Resolve(from *url.URL, ref string) (*url.URL, error) {
	r, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", ref, err)
	}
	if from == nil {
		from = c.base
	}
	if strings.HasPrefix(ref, "/") && c.base.Path != "/" {
		// server-absolute paths live under the base path
		r.Path = strings.TrimSuffix(c.base.Path, "/") + r.Path
		if r.RawPath != "" {
			r.RawPath = strings.TrimSuffix(c.base.EscapedPath(), "/") + r.RawPath
		}
	}
	return from.ResolveReference(r), nil
}

// Load fetches and parses the page at path. Redirects are followed, so
// Path reflects where /random landed.
func (c *Client) Load(ctx context.Context, path string) (*Page, error) {
	u, err := c.Resolve(nil, path)
	if err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, u, "text/html")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := dom.Parse(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, err
	}

	final := resp.Request.URL
	return &Page{
		Path: c.relative(final),
		URL:  final,
		Doc:  doc,
	}, nil
}

// Download streams the resource at u into w and returns the byte count.
func (c *Client) Download(ctx context.Context, u *url.URL, w io.Writer) (int64, error) {
	resp, err := c.get(ctx, u, "*/*")
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("read %s: %w", u.Path, err)
	}
	return n, nil
}

func (c *Client) get(ctx context.Context, u *url.URL, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, fmt.Errorf("%s: %w", u.Path, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%s: unexpected status: %s", u.Path, resp.Status)
	}
	return resp, nil
}

// relative strips the server base from u, keeping the query.
func (c *Client) relative(u *url.URL) string {
	p := u.EscapedPath()
	if base := strings.TrimSuffix(c.base.EscapedPath(), "/"); base != "" {
		p = strings.TrimPrefix(p, base)
	}
	if p == "" {
		p = "/"
	}
	if u.RawQuery != "" {
		p += "?" + u.RawQuery
	}
	return p
}
