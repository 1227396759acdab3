package main

import (
	"fmt"

	web2llm "github.com/yamasammy/Web2LLM"
	"github.com/yamasammy/Web2LLM/fs"
	"github.com/yamasammy/Web2LLM/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	var writer web2llm.ResultWriter
	if c.Save {
		writer = fs.NewWriter(c.Dir)
	}

	pipeline, err := newPipeline(deps, c.Extractor, 0, writer)
	if err != nil {
		return err
	}
	defer pipeline.Fetcher.Close()

	result := pipeline.ProcessURL(deps.Ctx, c.URL, scrape.Options{
		Save:       c.Save,
		OutputName: c.Output,
	})

	if !result.Success {
		return web2llm.Errorf(web2llm.EINTERNAL, "scrape failed: %s", result.Error)
	}

	if c.Save {
		fmt.Fprintf(deps.Stdout, "Saved %s\n", result.SavedPath)
		if result.HTMLSaved {
			fmt.Fprintf(deps.Stdout, "Saved %s (conversion looked incomplete; cleaned HTML kept for review)\n", result.HTMLSavedPath)
		}
		return nil
	}

	fmt.Fprintln(deps.Stdout, result.Markdown)
	return nil
}
