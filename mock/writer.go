package mock

import (
	"context"

	web2llm "github.com/yamasammy/Web2LLM"
)

var _ web2llm.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of web2llm.ResultWriter.
type ResultWriter struct {
	WriteMarkdownFn func(ctx context.Context, result *web2llm.Result, name string) (string, error)
	WriteHTMLFn     func(ctx context.Context, result *web2llm.Result, cleanHTML, name string) (string, error)
}

func (w *ResultWriter) WriteMarkdown(ctx context.Context, result *web2llm.Result, name string) (string, error) {
	return w.WriteMarkdownFn(ctx, result, name)
}

func (w *ResultWriter) WriteHTML(ctx context.Context, result *web2llm.Result, cleanHTML, name string) (string, error) {
	return w.WriteHTMLFn(ctx, result, cleanHTML, name)
}
