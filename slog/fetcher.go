// Package slog provides log/slog decorators for cmdref services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cmdref"
)

// Ensure LoggingFetcher implements cmdref.Fetcher.
var _ cmdref.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   cmdref.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next cmdref.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the source being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context) (data []byte, err error) {
	defer func(begin time.Time) {
		f.logger.Info("catalog fetch",
			"source", f.next.Source(),
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx)
}

// Source delegates to the wrapped fetcher.
func (f *LoggingFetcher) Source() string {
	return f.next.Source()
}
