package web2llm

import "context"

// SitemapSource discovers page URLs for batch processing from a site's
// sitemaps.
type SitemapSource interface {
	// Discover finds page URLs starting from baseURL. When baseURL has a
	// non-root path, only URLs under that path are returned. Returns an
	// empty slice (not nil) when the site publishes no sitemaps.
	Discover(ctx context.Context, baseURL string) ([]string, error)
}
