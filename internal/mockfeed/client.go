// Package mockfeed implements the fallback remote source: a static JSON
// document served over HTTP. It is consulted only when the primary search
// API fails, so the local store still fills with browsable data.
package mockfeed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mrlokans/pawdopt/internal/normalize"
)

const defaultTimeout = 15 * time.Second

// ErrNoData indicates the feed document was empty
var ErrNoData = errors.New("mock feed returned no data")

// StatusError represents a non-200 response from the feed host
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("mock feed error: HTTP %d", e.StatusCode)
}

// Client fetches the static fallback feed.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient creates a new fallback feed client.
func NewClient(feedURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        feedURL,
	}
}

// Kind identifies this client to the sync engine and normalizer.
func (c *Client) Kind() normalize.SourceKind {
	return normalize.SourceMockFeed
}

// Fetch downloads the feed document. The species argument is ignored: the
// document is not filterable server-side, the caller narrows the result.
func (c *Client) Fetch(ctx context.Context, species string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mock feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}
	if len(body) == 0 {
		return nil, ErrNoData
	}

	return body, nil
}
