package ucd

import "context"

// Fetcher retrieves a remote resource as raw bytes.
// The whole response body is buffered in memory before being returned;
// the UCD archive is small enough that streaming is not worth the
// complexity.
type Fetcher interface {
	// Fetch performs a single GET against the URL and returns the full
	// response body. A non-200 status is reported as an EUNAVAILABLE
	// error carrying the status code.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
