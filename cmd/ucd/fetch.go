package main

import (
	"github.com/fwojciec/ucd"
	"github.com/fwojciec/ucd/zip"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	fetcher := deps.NewFetcher(c.Timeout, c.Verbose)
	defer fetcher.Close()

	m := &ucd.Mirror{
		Fetcher:   fetcher,
		Extractor: zip.NewExtractor(),
		Store:     deps.NewStore(c.Root),
		URL:       c.URL,
		Stdout:    deps.Stdout,
	}

	return m.Run(deps.Ctx)
}
