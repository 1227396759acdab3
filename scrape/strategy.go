package scrape

import (
	"strings"

	web2llm "github.com/yamasammy/Web2LLM"
	"github.com/yamasammy/Web2LLM/goquery"
)

// plainTextTrigger is the structural-walk output length below which the
// plain-text strategy is tried as a replacement.
const plainTextTrigger = 200

// runStrategies produces the final Markdown for a cleaned HTML document by
// running the conversion strategies in priority order:
//
//  1. library conversion (html-to-markdown)
//  2. structural element walk
//  3. plain text extraction, only when the walk produced under 200
//     characters, and only when it is strictly longer
//
// A sanitized, markup-free library result is accepted immediately without
// running the fallback strategies. When the library result retains markup,
// the fallback candidate is produced and the final pick goes to the strictly
// longer, markup-free candidate. Never fails: worst case is an empty string
// for an empty document.
func (p *Pipeline) runStrategies(html string) string {
	var library web2llm.Candidate
	if p.Converter != nil {
		if md, err := p.Converter.Convert(html); err == nil {
			library = web2llm.NewCandidate(web2llm.StrategyLibrary, web2llm.SanitizeMarkdown(md))
			if library.MarkupFree && strings.TrimSpace(library.Markdown) != "" {
				return library.Markdown
			}
		}
	}

	structural := goquery.StructuralMarkdown(html)
	fallbackID := web2llm.StrategyStructural
	fallback := structural

	if strings.TrimSpace(structural) == "" || len(structural) < plainTextTrigger {
		if plain := goquery.PlainText(html); len(plain) > len(structural) {
			fallbackID = web2llm.StrategyPlainText
			fallback = plain
		}
	}

	candidate := web2llm.NewCandidate(fallbackID, web2llm.SanitizeMarkdown(fallback))

	return web2llm.SelectCandidate(library, candidate).Markdown
}

// ConvertToMarkdown converts cleaned HTML to sanitized Markdown. Relative
// URLs are resolved against sourceURL and the HTML is normalized before the
// strategies run. Degraded input degrades the output quality, never the call:
// ConvertToMarkdown has no error path.
func (p *Pipeline) ConvertToMarkdown(cleanHTML, sourceURL string) string {
	html := cleanHTML

	if resolved, err := goquery.ResolveURLs(html, sourceURL); err == nil {
		html = resolved
	}
	if prepared, err := goquery.PrepareForConversion(html); err == nil {
		html = prepared
	}

	return p.runStrategies(html)
}
