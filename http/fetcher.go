// Package http provides the HTTP implementations of web2llm.Fetcher and
// web2llm.SitemapSource. Pages requiring JavaScript rendering are out of
// scope; what the server returns is what gets processed.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	web2llm "github.com/yamasammy/Web2LLM"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the scraper to origin servers.
const DefaultUserAgent = "Mozilla/5.0 (compatible; web2llm/1.0; +https://github.com/yamasammy/Web2LLM)"

// Ensure Fetcher implements web2llm.Fetcher at compile time.
var _ web2llm.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// Response bodies are decoded to UTF-8 using the declared charset.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Transport failures
// and non-2xx responses come back as EUNAVAILABLE errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", web2llm.Errorf(web2llm.EINVALID, "invalid URL %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", web2llm.Errorf(web2llm.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", web2llm.Errorf(web2llm.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	// Decode to UTF-8 using the Content-Type charset or in-document hints.
	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", web2llm.Errorf(web2llm.EINTERNAL, "charset detection for %s: %v", url, err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", web2llm.Errorf(web2llm.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
