package mock

import (
	web2llm "github.com/yamasammy/Web2LLM"
)

var _ web2llm.Converter = (*Converter)(nil)

// Converter is a mock implementation of web2llm.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
