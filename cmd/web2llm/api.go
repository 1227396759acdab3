package main

import (
	"fmt"

	"github.com/yamasammy/Web2LLM/api"
	"github.com/yamasammy/Web2LLM/fs"
	"github.com/yamasammy/Web2LLM/sqlite"
)

// Run executes the api command.
func (c *APICmd) Run(deps *Dependencies) error {
	db := sqlite.NewDB(c.DB)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
	}
	defer db.Close()

	pipeline, err := newPipeline(deps, "readability", 0, fs.NewWriter(c.Dir))
	if err != nil {
		return err
	}
	defer pipeline.Fetcher.Close()

	server := api.NewServer()
	server.Pipeline = pipeline
	server.Jobs = sqlite.NewJobService(db)
	server.Logger = deps.Logger
	server.Addr = fmt.Sprintf("%s:%d", c.Host, c.Port)

	return server.Open()
}
