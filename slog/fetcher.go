// Package slog provides logging decorators for ucd interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ucd"
)

// Ensure LoggingFetcher implements ucd.Fetcher.
var _ ucd.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured logging of each download.
type LoggingFetcher struct {
	next   ucd.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next ucd.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	begin := time.Now()
	data, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	f.logger.Info("fetch complete",
		"url", url,
		"bytes", len(data),
		"duration", time.Since(begin),
	)
	return data, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
