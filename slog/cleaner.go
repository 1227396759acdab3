package slog

import (
	"log/slog"
	"time"

	web2llm "github.com/yamasammy/Web2LLM"
)

// Ensure LoggingCleaner implements web2llm.Cleaner.
var _ web2llm.Cleaner = (*LoggingCleaner)(nil)

// LoggingCleaner wraps a Cleaner with logging of input/output sizes.
type LoggingCleaner struct {
	next   web2llm.Cleaner
	logger *slog.Logger
}

// NewLoggingCleaner creates a new LoggingCleaner.
func NewLoggingCleaner(next web2llm.Cleaner, logger *slog.Logger) *LoggingCleaner {
	return &LoggingCleaner{next: next, logger: logger}
}

// Clean delegates to the wrapped cleaner and logs the operation.
func (c *LoggingCleaner) Clean(rawHTML, sourceURL string) (result *web2llm.CleanResult, err error) {
	defer func(begin time.Time) {
		var title string
		var outBytes int
		if result != nil {
			title = result.Title
			outBytes = len(result.CleanHTML)
		}
		c.logger.Info("clean",
			"url", sourceURL,
			"inBytes", len(rawHTML),
			"outBytes", outBytes,
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Clean(rawHTML, sourceURL)
}
