// Package http provides an HTTP-based implementation of ucd.Fetcher for
// downloading the UCD archive from unicode.org.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/ucd"
)

// DefaultFetchTimeout is the default timeout for HTTP requests. The UCD
// archive is a single multi-megabyte download, so this is more generous
// than a typical page fetch.
const DefaultFetchTimeout = 60 * time.Second

// Ensure Fetcher implements ucd.Fetcher at compile time.
var _ ucd.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves remote resources using plain HTTP requests. It issues
// exactly one GET per Fetch call; there is no retry or resumption.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the full response body from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ucd.Errorf(ucd.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
