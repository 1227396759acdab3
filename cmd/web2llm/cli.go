package main

import (
	"context"
	"io"
	"log/slog"

	web2llm "github.com/yamasammy/Web2LLM"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Sitemaps web2llm.SitemapSource
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape  ScrapeCmd  `cmd:"" help:"Scrape a single page to Markdown"`
	Batch   BatchCmd   `cmd:"" help:"Scrape multiple pages into an output directory"`
	API     APICmd     `cmd:"" name:"api" help:"Run the HTTP API server"`
	Version VersionCmd `cmd:"" help:"Print the version"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL       string `arg:"" help:"Page URL"`
	Save      bool   `short:"s" help:"Save the Markdown to a file instead of printing it"`
	Output    string `short:"o" help:"Output filename (without extension)"`
	Dir       string `short:"d" default:"output" help:"Output directory"`
	Extractor string `default:"readability" help:"Primary extractor (readability or trafilatura)"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string `arg:"" optional:"" help:"Page URLs"`
	Sitemap     string   `help:"Discover URLs from the site's sitemaps under this base URL"`
	Name        string   `default:"batch" help:"Output directory name"`
	Dir         string   `short:"d" default:"output" help:"Parent output directory"`
	Concurrency int      `short:"c" default:"5" help:"Concurrent fetch limit"`
	Extractor   string   `default:"readability" help:"Primary extractor (readability or trafilatura)"`
}

// APICmd is the "api" subcommand.
type APICmd struct {
	Host string `default:"localhost" help:"Listen host"`
	Port int    `default:"8000" help:"Listen port"`
	Dir  string `short:"d" default:"output" help:"Output directory for saved pages"`
	DB   string `default:"web2llm.db" help:"SQLite database path for batch jobs"`
}

// VersionCmd is the "version" subcommand.
type VersionCmd struct{}
