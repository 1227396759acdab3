package mock

import (
	web2llm "github.com/yamasammy/Web2LLM"
)

var _ web2llm.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of web2llm.Cleaner.
type Cleaner struct {
	CleanFn func(rawHTML, sourceURL string) (*web2llm.CleanResult, error)
}

func (c *Cleaner) Clean(rawHTML, sourceURL string) (*web2llm.CleanResult, error) {
	return c.CleanFn(rawHTML, sourceURL)
}
