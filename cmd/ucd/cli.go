package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/ucd"
)

// Dependencies holds the services and constructors commands run against.
// Tests swap the constructors for mocks.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	NewFetcher func(timeout time.Duration, verbose bool) ucd.Fetcher
	NewStore   func(root string) ucd.DataStore
	OpenIndex  func(path string) (ucd.IndexService, func() error, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fetch   FetchCmd   `cmd:"" help:"Download and extract the latest UCD archive"`
	Info    InfoCmd    `cmd:"" help:"Show the state of the local UCD data"`
	Version VersionCmd `cmd:"" help:"Print the UCD version of the local data"`
	Blocks  BlocksCmd  `cmd:"" help:"List the named codepoint blocks"`
	Ranges  RangesCmd  `cmd:"" help:"Print compressed general category ranges"`
	Load    LoadCmd    `cmd:"" help:"Load the local UCD data into a query index"`
	Lookup  LookupCmd  `cmd:"" help:"Look up a codepoint in the index"`
	List    ListCmd    `cmd:"" help:"List codepoints in the index"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Root    string        `default:"." help:"Repository root holding the data directory"`
	URL     string        `help:"Archive URL (defaults to the published UCD location)"`
	Timeout time.Duration `default:"60s" help:"HTTP timeout for the download"`
	Verbose bool          `short:"v" help:"Log fetch details to stderr"`
}

// InfoCmd is the "info" subcommand.
type InfoCmd struct {
	Root string `default:"." help:"Repository root holding the data directory"`
}

// VersionCmd is the "version" subcommand.
type VersionCmd struct {
	Root string `default:"." help:"Repository root holding the data directory"`
}

// BlocksCmd is the "blocks" subcommand.
type BlocksCmd struct {
	Root string `default:"." help:"Repository root holding the data directory"`
}

// RangesCmd is the "ranges" subcommand.
type RangesCmd struct {
	Root string `default:"." help:"Repository root holding the data directory"`
}

// LoadCmd is the "load" subcommand.
type LoadCmd struct {
	Root string `default:"." help:"Repository root holding the data directory"`
	DB   string `default:"ucd.db" help:"Index database path"`
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	Code string `arg:"" help:"Codepoint in hex, e.g. 0041 or U+0041"`
	DB   string `default:"ucd.db" help:"Index database path"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	DB       string `default:"ucd.db" help:"Index database path"`
	Category string `short:"c" help:"Filter by general category, e.g. Lu"`
	Name     string `short:"n" help:"Filter by name substring"`
	Limit    int    `default:"50" help:"Maximum number of rows"`
	Offset   int    `help:"Number of rows to skip"`
}
