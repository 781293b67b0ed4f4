package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cmdref"
)

// Ensure LoggingLoader implements cmdref.Loader.
var _ cmdref.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with logging.
type LoggingLoader struct {
	next   cmdref.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next cmdref.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the outcome.
func (l *LoggingLoader) Load(ctx context.Context) (doc *cmdref.RawCatalog, err error) {
	defer func(begin time.Time) {
		var digest string
		if doc != nil {
			digest = doc.Digest
		}
		l.logger.Info("catalog load",
			"categories", doc.CategoryCount(),
			"digest", digest,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx)
}
