package web2llm

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations handle transport concerns such as timeouts, retry-friendly
// errors and character encoding detection; the returned HTML is always UTF-8.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its decoded HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
