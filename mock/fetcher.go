package mock

import (
	"context"

	web2llm "github.com/yamasammy/Web2LLM"
)

var _ web2llm.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of web2llm.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
