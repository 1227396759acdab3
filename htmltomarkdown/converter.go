// Package htmltomarkdown implements the library-based Markdown conversion
// strategy on top of html-to-markdown with the commonmark and table plugins.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	web2llm "github.com/yamasammy/Web2LLM"
)

// Ensure Converter implements web2llm.Converter at compile time.
var _ web2llm.Converter = (*Converter)(nil)

// Converter converts cleaned HTML to Markdown. It is the preferred of the
// three conversion strategies; its output is accepted only when it is longer
// than the structural fallback and free of leftover markup, so Convert makes
// no attempt to repair bad input itself.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", web2llm.Errorf(web2llm.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}
