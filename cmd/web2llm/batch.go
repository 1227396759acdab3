package main

import (
	"fmt"

	web2llm "github.com/yamasammy/Web2LLM"
	"github.com/yamasammy/Web2LLM/fs"
	"github.com/yamasammy/Web2LLM/scrape"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls := c.URLs

	if c.Sitemap != "" {
		discovered, err := deps.Sitemaps.Discover(deps.Ctx, c.Sitemap)
		if err != nil {
			return fmt.Errorf("sitemap discovery failed: %w", err)
		}
		if len(discovered) == 0 {
			fmt.Fprintf(deps.Stderr, "No sitemap URLs found under %s\n", c.Sitemap)
		}
		urls = append(urls, discovered...)
	}

	if len(urls) == 0 {
		return web2llm.Errorf(web2llm.EINVALID, "no URLs given; pass URLs as arguments or use --sitemap")
	}

	store := fs.NewBatchStore(c.Dir, c.Name)

	pipeline, err := newPipeline(deps, c.Extractor, c.Concurrency, store)
	if err != nil {
		return err
	}
	defer pipeline.Fetcher.Close()

	batch := pipeline.ProcessBatch(deps.Ctx, urls, scrape.Options{Save: true})

	if batch.Succeeded == 0 {
		if err := store.Abort(); err != nil {
			fmt.Fprintf(deps.Stderr, "failed to clean up staging directory: %s\n", err)
		}
		return web2llm.Errorf(web2llm.EUNAVAILABLE, "all %d URLs failed", batch.Total)
	}

	if err := store.Commit(); err != nil {
		return fmt.Errorf("failed to finalize output directory: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Scraped %d/%d pages into %s\n", batch.Succeeded, batch.Total, c.Dir+"/"+c.Name)
	for _, r := range batch.Results {
		if !r.Success {
			fmt.Fprintf(deps.Stderr, "failed: %s: %s\n", r.URL, r.Error)
		}
	}

	return nil
}
