package scrape_test

import (
	"context"
	"testing"
	"time"

	web2llm "github.com/yamasammy/Web2LLM"
	"github.com/yamasammy/Web2LLM/mock"
	"github.com/yamasammy/Web2LLM/scrape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDelays keeps retry tests fast.
func testDelays() []time.Duration {
	return []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}
}

func TestDefaultRetryDelays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, scrape.DefaultRetryDelays())
}

func TestPipeline_FetchRetry(t *testing.T) {
	t.Parallel()

	t.Run("first success fetches once", func(t *testing.T) {
		t.Parallel()

		calls := 0
		p := &scrape.Pipeline{
			Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
				calls++
				return longArticleHTML(), nil
			}},
			Cleaner:     passthroughCleaner(),
			RetryDelays: testDelays(),
		}

		result := p.ProcessURL(context.Background(), "https://example.com/a", scrape.Options{})

		require.True(t, result.Success)
		assert.Equal(t, 1, calls)
	})

	t.Run("recovers from transient failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		p := &scrape.Pipeline{
			Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
				calls++
				if calls < 3 {
					return "", web2llm.Errorf(web2llm.EUNAVAILABLE, "connection reset")
				}
				return longArticleHTML(), nil
			}},
			Cleaner:     passthroughCleaner(),
			RetryDelays: testDelays(),
		}

		result := p.ProcessURL(context.Background(), "https://example.com/a", scrape.Options{})

		require.True(t, result.Success)
		assert.Equal(t, 3, calls)
	})

	t.Run("reports the last error after exhausting attempts", func(t *testing.T) {
		t.Parallel()

		calls := 0
		p := &scrape.Pipeline{
			Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
				calls++
				return "", web2llm.Errorf(web2llm.EUNAVAILABLE, "still down")
			}},
			Cleaner:     passthroughCleaner(),
			RetryDelays: testDelays(),
		}

		result := p.ProcessURL(context.Background(), "https://example.com/a", scrape.Options{})

		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "still down")
		assert.Equal(t, 4, calls, "1 initial attempt + 3 retries")
	})

	t.Run("cancellation stops the retry loop", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		p := &scrape.Pipeline{
			Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
				calls++
				cancel()
				return "", web2llm.Errorf(web2llm.EUNAVAILABLE, "down")
			}},
			Cleaner:     passthroughCleaner(),
			RetryDelays: testDelays(),
		}

		result := p.ProcessURL(ctx, "https://example.com/a", scrape.Options{})

		assert.False(t, result.Success)
		assert.Equal(t, 1, calls)
	})
}
