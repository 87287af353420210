package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pagemount/pagemount/internal/domain"
)

// Client is an HTTP client for retrieving manifests and published assets
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// ClientOptions contains options for creating a Client
type ClientOptions struct {
	// Timeout bounds each request. Zero means no timeout: a hung request
	// stalls the embed pipeline, matching the loader's historical behavior.
	Timeout   time.Duration
	UserAgent string
}

// DefaultClientOptions returns default client options
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		Timeout:   0,
		UserAgent: "pagemount",
	}
}

// NewClient creates a new HTTP client
func NewClient(opts ClientOptions) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		userAgent:  opts.UserAgent,
	}
}

// Get fetches content from a URL. A transport failure or non-2xx status is
// returned as a FetchError; no request is ever retried.
func (c *Client) Get(ctx context.Context, url string) (*domain.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domain.NewFetchError(url, 0, err)
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewFetchError(url, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domain.NewFetchError(url, resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewFetchError(url, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err))
	}

	return &domain.Response{
		StatusCode:  resp.StatusCode,
		Body:        body,
		Headers:     resp.Header,
		ContentType: resp.Header.Get("Content-Type"),
		URL:         url,
	}, nil
}
