package ucd

import (
	"context"
	"fmt"
	"io"
)

// DefaultURL is the published location of the latest UCD archive.
const DefaultURL = "https://www.unicode.org/Public/UCD/latest/ucd/UCD.zip"

// Mirror coordinates downloading the UCD archive into a local data
// directory. A run is idempotent: once the sentinel file is present,
// subsequent runs do nothing.
type Mirror struct {
	Fetcher   Fetcher
	Extractor Extractor
	Store     DataStore

	// URL of the archive. Defaults to DefaultURL.
	URL string

	// Stdout receives progress messages. Defaults to io.Discard.
	Stdout io.Writer
}

// Run performs the fetch-and-extract sequence.
//
// A non-200 response is a soft failure: it is reported on Stdout and Run
// returns nil, leaving only the (possibly empty) data directory behind.
// Transport and archive-decode faults are returned as errors.
func (m *Mirror) Run(ctx context.Context) error {
	out := m.Stdout
	if out == nil {
		out = io.Discard
	}
	url := m.URL
	if url == "" {
		url = DefaultURL
	}

	if m.Store.HasSentinel() {
		fmt.Fprintf(out, "UCD data seems to exist already in %s, skipping...\n", m.Store.Dir())
		fmt.Fprintf(out, "(to download again delete the directory contents)\n")
		return nil
	}

	if err := m.Store.Ensure(); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	fmt.Fprintf(out, "Downloading %s...\n", url)

	data, err := m.Fetcher.Fetch(ctx, url)
	if err != nil {
		if ErrorCode(err) == EUNAVAILABLE {
			fmt.Fprintf(out, "download failed: %s\n", ErrorMessage(err))
			return nil
		}
		return err
	}

	fmt.Fprintf(out, "Downloaded %d bytes, extracting...\n", len(data))

	n, err := m.Extractor.Extract(ctx, data, m.Store.Dir())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Extracted %d files to %s\n", n, m.Store.Dir())
	return nil
}
