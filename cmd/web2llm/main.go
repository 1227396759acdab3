package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	web2llm "github.com/yamasammy/Web2LLM"
	"github.com/yamasammy/Web2LLM/goquery"
	"github.com/yamasammy/Web2LLM/htmltomarkdown"
	webhttp "github.com/yamasammy/Web2LLM/http"
	"github.com/yamasammy/Web2LLM/readability"
	"github.com/yamasammy/Web2LLM/scrape"
	webslog "github.com/yamasammy/Web2LLM/slog"
	"github.com/yamasammy/Web2LLM/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("web2llm"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'web2llm --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Sitemaps = webslog.NewLoggingSitemapSource(webhttp.NewSitemapSource(nil), deps.Logger)

	return kongCtx.Run(deps)
}

// newPipeline builds a scrape pipeline with the chosen extractor and writer.
// The fetcher and cleaner are wrapped in logging decorators.
func newPipeline(deps *Dependencies, extractorName string, concurrency int, writer web2llm.ResultWriter) (*scrape.Pipeline, error) {
	var extractor web2llm.Extractor
	switch extractorName {
	case "readability", "":
		extractor = readability.NewExtractor()
	case "trafilatura":
		extractor = trafilatura.NewExtractor()
	default:
		return nil, web2llm.Errorf(web2llm.EINVALID, "unknown extractor %q (use readability or trafilatura)", extractorName)
	}

	p := &scrape.Pipeline{
		Fetcher:   webslog.NewLoggingFetcher(webhttp.NewFetcher(), deps.Logger),
		Cleaner:   webslog.NewLoggingCleaner(goquery.NewCleaner(extractor), deps.Logger),
		Converter: htmltomarkdown.NewConverter(),
		Writer:    writer,
		Limiter:   scrape.NewDomainLimiter(1.0),
	}
	if concurrency > 0 {
		p.Concurrency = concurrency
	}
	return p, nil
}
