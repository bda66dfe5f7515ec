// Package adoptapet implements the primary remote source: the pet-search
// HTTP API. The client only performs the fetch and status handling; payload
// decoding belongs to the normalize package.
package adoptapet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mrlokans/pawdopt/internal/normalize"
)

const defaultTimeout = 30 * time.Second

// Config holds the search parameters sent with every fetch.
type Config struct {
	BaseURL     string
	APIKey      string
	CityOrZip   string
	GeoRange    int
	StartNumber int
	EndNumber   int
	Timeout     time.Duration
}

// Client interfaces with the pet-search API.
type Client struct {
	httpClient *http.Client
	cfg        Config
}

// NewClient creates a new pet-search API client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		cfg:        cfg,
	}
}

// Kind identifies this client to the sync engine and normalizer.
func (c *Client) Kind() normalize.SourceKind {
	return normalize.SourceAdoptAPet
}

// Fetch performs a pet search and returns the raw response body. An empty
// species searches all species. Non-200 responses and empty bodies fail;
// envelope-level API errors are left for the normalizer to surface.
func (c *Client) Fetch(ctx context.Context, species string) ([]byte, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid search URL: %w", err)
	}

	q := u.Query()
	q.Set("key", c.cfg.APIKey)
	q.Set("v", "3")
	q.Set("output", "json")
	q.Set("city_or_zip", c.cfg.CityOrZip)
	q.Set("geo_range", strconv.Itoa(c.cfg.GeoRange))
	q.Set("start_number", strconv.Itoa(c.cfg.StartNumber))
	q.Set("end_number", strconv.Itoa(c.cfg.EndNumber))
	q.Set("sort", "distance")
	if species != "" {
		q.Set("species", species)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pet search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(body) == 0 {
		return nil, ErrNoData
	}

	return body, nil
}
