// Package readability implements the primary content extractor on top of
// go-readability.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	web2llm "github.com/yamasammy/Web2LLM"
)

// Ensure Extractor implements web2llm.Extractor at compile time.
var _ web2llm.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML. Its
// output is treated as a best guess: the cleaning pipeline re-cleans it and
// recovers supplemental content when it comes back too short.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*web2llm.ExtractResult, error) {
	if rawHTML == "" {
		return nil, web2llm.Errorf(web2llm.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &web2llm.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
