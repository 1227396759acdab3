package slog

import (
	"context"
	"log/slog"
	"time"

	web2llm "github.com/yamasammy/Web2LLM"
)

// Ensure LoggingSitemapSource implements web2llm.SitemapSource.
var _ web2llm.SitemapSource = (*LoggingSitemapSource)(nil)

// LoggingSitemapSource wraps a SitemapSource with discovery logging.
type LoggingSitemapSource struct {
	next   web2llm.SitemapSource
	logger *slog.Logger
}

// NewLoggingSitemapSource creates a new LoggingSitemapSource.
func NewLoggingSitemapSource(next web2llm.SitemapSource, logger *slog.Logger) *LoggingSitemapSource {
	return &LoggingSitemapSource{next: next, logger: logger}
}

// Discover delegates to the wrapped source and logs the operation.
func (s *LoggingSitemapSource) Discover(ctx context.Context, baseURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap discovery",
			"url", baseURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Discover(ctx, baseURL)
}
