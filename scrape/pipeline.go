// Package scrape orchestrates the page-to-Markdown pipeline: fetch with
// retry, content cleaning, conversion strategy selection, sanitization and
// persistence, for single URLs and concurrent batches.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	web2llm "github.com/yamasammy/Web2LLM"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the batch worker limit when none is configured.
const DefaultConcurrency = 5

// rawHTMLRetainLen is the markdown length below which the cleaned HTML is
// retained alongside the result for manual recovery.
const rawHTMLRetainLen = 500

// Pipeline coordinates the scraping pipeline. Fetcher and Cleaner are
// required; Converter, Writer and Limiter are optional and degrade
// functionality rather than fail it.
type Pipeline struct {
	Fetcher   web2llm.Fetcher
	Cleaner   web2llm.Cleaner
	Converter web2llm.Converter
	Writer    web2llm.ResultWriter

	// Limiter throttles per-domain request rates during batches.
	Limiter *DomainLimiter

	Concurrency int
	RetryDelays []time.Duration
}

// Options control persistence for a single processed URL.
type Options struct {
	// Save persists the markdown (and, for suspicious conversions, the
	// cleaned HTML) through the pipeline's Writer.
	Save bool

	// OutputName overrides the filename derived from the page title.
	OutputName string
}

// ProcessURL runs the full pipeline for one URL. The returned Result is
// never nil: failures come back as a Result with Success=false and the error
// message attached. A result fails only when the fetch fails after retries
// or the cleaned page has no content at all.
func (p *Pipeline) ProcessURL(ctx context.Context, pageURL string, opts Options) *web2llm.Result {
	result := &web2llm.Result{URL: pageURL}

	html, err := p.fetchWithRetry(ctx, pageURL)
	if err != nil {
		result.Error = web2llm.ErrorMessage(err)
		return result
	}

	cleaned, err := p.Cleaner.Clean(html, pageURL)
	if err != nil {
		result.Error = web2llm.ErrorMessage(err)
		return result
	}
	result.Title = cleaned.Title

	// The clean document always carries a title heading, so emptiness is
	// judged on the extracted content itself, not the rendered markdown.
	if cleaned.ContentTextLength == 0 {
		result.Error = "no content could be extracted"
		return result
	}

	markdown := p.ConvertToMarkdown(cleaned.CleanHTML, pageURL)
	if strings.TrimSpace(markdown) == "" {
		result.Error = "no content could be extracted"
		return result
	}

	result.Markdown = markdown
	result.ContentHash = ContentHash(markdown)
	result.RawHTMLRetained = len(markdown) < rawHTMLRetainLen || strings.Contains(markdown, "<")
	result.Success = true

	if opts.Save && p.Writer != nil {
		p.persist(ctx, result, cleaned.CleanHTML, opts.OutputName)
	}

	return result
}

// persist writes the markdown and, when the conversion looked suspicious,
// the cleaned HTML sibling. Persistence failures demote Saved, not Success.
func (p *Pipeline) persist(ctx context.Context, result *web2llm.Result, cleanHTML, name string) {
	path, err := p.Writer.WriteMarkdown(ctx, result, name)
	if err != nil {
		result.Error = web2llm.ErrorMessage(err)
		return
	}
	result.Saved = true
	result.SavedPath = path

	if result.RawHTMLRetained {
		htmlPath, err := p.Writer.WriteHTML(ctx, result, cleanHTML, name)
		if err != nil {
			result.Error = web2llm.ErrorMessage(err)
			return
		}
		result.HTMLSaved = true
		result.HTMLSavedPath = htmlPath
	}
}

// ProcessBatch processes URLs concurrently and returns per-URL results in
// input order. One URL's failure never aborts the rest; the batch itself
// cannot fail.
func (p *Pipeline) ProcessBatch(ctx context.Context, urls []string, opts Options) *web2llm.BatchResult {
	batch := &web2llm.BatchResult{
		Total:   len(urls),
		Results: make([]*web2llm.Result, len(urls)),
	}
	if len(urls) == 0 {
		return batch
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			batch.Results[i] = p.processBatchURL(gctx, u, opts)
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range batch.Results {
		if r != nil && r.Success {
			batch.Succeeded++
		}
	}

	return batch
}

// processBatchURL applies the per-domain rate limit before running the
// pipeline for one batch member.
func (p *Pipeline) processBatchURL(ctx context.Context, pageURL string, opts Options) *web2llm.Result {
	if p.Limiter != nil {
		parsed, err := url.Parse(pageURL)
		if err != nil {
			return &web2llm.Result{URL: pageURL, Error: fmt.Sprintf("invalid URL: %v", err)}
		}
		if err := p.Limiter.Wait(ctx, parsed.Host); err != nil {
			return &web2llm.Result{URL: pageURL, Error: web2llm.ErrorMessage(err)}
		}
	}
	return p.ProcessURL(ctx, pageURL, opts)
}

// ContentHash computes the xxhash of content, hex-encoded.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
