package goquery

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	web2llm "github.com/yamasammy/Web2LLM"
)

// Ensure Cleaner implements web2llm.Cleaner at compile time.
var _ web2llm.Cleaner = (*Cleaner)(nil)

// DefaultTitle is used when neither the page nor the primary extractor
// supplies one.
const DefaultTitle = "Untitled"

// Cleaner extracts the main content of a raw HTML page. It removes
// boilerplate from the whole page, runs the primary extractor, cleans the
// extractor's output again, and recovers supplemental content when the
// result is too short. The extractor is optional; without one the cleaned
// whole page stands in for extracted content.
type Cleaner struct {
	extractor web2llm.Extractor
}

// NewCleaner creates a Cleaner around the given primary extractor.
// A nil extractor is valid.
func NewCleaner(extractor web2llm.Extractor) *Cleaner {
	return &Cleaner{extractor: extractor}
}

// Clean implements web2llm.Cleaner. It never fails on malformed input: any
// internal failure degrades to returning the raw HTML with the default
// title. An error is returned only for empty input.
func (c *Cleaner) Clean(rawHTML, sourceURL string) (*web2llm.CleanResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, web2llm.Errorf(web2llm.EINVALID, "empty HTML input")
	}

	result := c.clean(rawHTML)
	if result == nil {
		// Degraded path: hand back the original unmodified. The raw page
		// counts as content so the caller still gets its fallback text.
		return &web2llm.CleanResult{
			CleanHTML:         rawHTML,
			Title:             DefaultTitle,
			ContentTextLength: len(rawHTML),
		}, nil
	}
	return result, nil
}

func (c *Cleaner) clean(rawHTML string) *web2llm.CleanResult {
	doc, err := Parse(rawHTML)
	if err != nil {
		return nil
	}

	textLenBefore := DocumentTextLength(doc)
	RemoveBoilerplate(doc)
	textLenAfter := DocumentTextLength(doc)

	if ShouldDetectPatterns(textLenBefore, textLenAfter) {
		DetectContentPatterns(doc)
	}

	title := collapseText(doc.Find("title").First().Text())
	if title == "" {
		title = DefaultTitle
	}

	// Primary extractor: a pluggable black box whose output gets the same
	// cleaning treatment. Its title wins only when strictly longer.
	var contentHTML string
	if c.extractor != nil {
		extracted, err := c.extractor.Extract(rawHTML)
		if err == nil && extracted != nil {
			if t := collapseText(extracted.Title); t != "" && len(t) > len(title) {
				title = t
			}
			contentHTML = extracted.ContentHTML
		}
	}
	if contentHTML == "" {
		// No extractor result: the cleaned whole page is the content.
		if body, err := doc.Find("body").Html(); err == nil {
			contentHTML = body
		}
	}

	content, err := Parse(contentHTML)
	if err != nil {
		return nil
	}

	RemoveBoilerplate(content)
	if DocumentTextLength(content) > detectionMinContent {
		DetectContentPatterns(content)
	}

	if DocumentTextLength(content) < recoveryTriggerLen {
		c.recoverInto(content, rawHTML)
	}

	body, err := content.Find("body").Html()
	if err != nil {
		return nil
	}

	// Measured before the title heading is injected, so a page reduced to
	// nothing reports zero even though the clean document is non-empty.
	contentLen := DocumentTextLength(content)

	escaped := html.EscapeString(title)
	cleanHTML := fmt.Sprintf(
		"<html><head><title>%s</title></head><body><h1>%s</h1>%s</body></html>",
		escaped, escaped, body,
	)

	return &web2llm.CleanResult{
		CleanHTML:         cleanHTML,
		Title:             title,
		ContentTextLength: contentLen,
	}
}

// recoverInto re-scans the raw page for dropped content, cleans it, and
// appends it to the content document in a wrapper element. The extractor's
// result is never discarded, only augmented.
func (c *Cleaner) recoverInto(content *goquery.Document, rawHTML string) {
	recovered := RecoverContent(rawHTML)
	if recovered == "" {
		return
	}

	rdoc, err := Parse(recovered)
	if err != nil {
		return
	}

	RemoveBoilerplate(rdoc)
	if DocumentTextLength(rdoc) > detectionMinContent {
		DetectContentPatterns(rdoc)
	}

	inner, err := rdoc.Find("body").Html()
	if err != nil || strings.TrimSpace(inner) == "" {
		return
	}

	content.Find("body").AppendHtml(`<div class="recovered-content">` + inner + `</div>`)
}
