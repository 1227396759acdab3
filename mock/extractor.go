package mock

import (
	web2llm "github.com/yamasammy/Web2LLM"
)

var _ web2llm.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of web2llm.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*web2llm.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*web2llm.ExtractResult, error) {
	return e.ExtractFn(html)
}
