// Package weather provides a client for the wttr.in one-line weather summary.
package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultURL is the wttr.in endpoint.
	DefaultURL = "https://wttr.in/"
	// DefaultFormat renders the condition symbol only; "3" adds the location
	// and temperature.
	DefaultFormat = "%c"

	userAgent = "moo-player/0.3 (https://github.com/llehouerou/moo)"

	// summaries are a handful of bytes; anything longer is not a summary
	maxBody = 4 << 10
)

// ErrEmpty is returned when the service answers with an empty summary.
var ErrEmpty = errors.New("empty weather summary")

// Client fetches the weather summary once per call. It never retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	format     string
}

// New creates a weather client. Empty arguments take the defaults.
func New(baseURL, format string) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if format == "" {
		format = DefaultFormat
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		format:  format,
	}
}

// Fetch returns the trimmed weather summary.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Set("format", c.format)
	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	summary := strings.TrimSpace(string(body))
	if summary == "" {
		return "", ErrEmpty
	}
	return summary, nil
}
