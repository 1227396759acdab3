package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RecoverContent re-scans the original raw page for content the primary
// extractor may have dropped. It tries a fixed, ordered list of
// content-bearing selectors and, when none match, falls back to collecting
// every paragraph with substantial text. The matched fragments are returned
// concatenated as an HTML string; empty when nothing qualifies.
func RecoverContent(rawHTML string) string {
	doc, err := Parse(rawHTML)
	if err != nil {
		return ""
	}

	var parts []string
	for _, selector := range recoverySelectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if html, err := goquery.OuterHtml(s); err == nil {
				parts = append(parts, html)
			}
		})
	}

	if len(parts) == 0 {
		doc.Find("p").Each(func(_ int, p *goquery.Selection) {
			if TextLength(p) > recoveryParagraphMin {
				if html, err := goquery.OuterHtml(p); err == nil {
					parts = append(parts, html)
				}
			}
		})
	}

	return strings.Join(parts, "\n")
}
