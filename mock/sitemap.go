package mock

import (
	"context"

	web2llm "github.com/yamasammy/Web2LLM"
)

var _ web2llm.SitemapSource = (*SitemapSource)(nil)

// SitemapSource is a mock implementation of web2llm.SitemapSource.
type SitemapSource struct {
	DiscoverFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapSource) Discover(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverFn(ctx, baseURL)
}
