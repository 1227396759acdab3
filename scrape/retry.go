package scrape

import (
	"context"
	"time"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetchWithRetry fetches pageURL through the pipeline's Fetcher, retrying
// transient failures with the pipeline's backoff delays (DefaultRetryDelays
// when unset; one initial attempt plus one retry per delay). Cancellation
// cuts a backoff short.
func (p *Pipeline) fetchWithRetry(ctx context.Context, pageURL string) (string, error) {
	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		html, err := p.Fetcher.Fetch(ctx, pageURL)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt == len(delays) {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
