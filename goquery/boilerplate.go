package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// Parse builds a mutable document from HTML text. The underlying parser is
// error-tolerant; malformed input yields whatever structure it recovered.
func Parse(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// TextLength returns the length of the whitespace-collapsed text content of
// the selection.
func TextLength(s *goquery.Selection) int {
	return len(collapseText(s.Text()))
}

// DocumentTextLength returns the text length of the whole document.
func DocumentTextLength(doc *goquery.Document) int {
	return len(collapseText(doc.Text()))
}

func collapseText(text string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(text, " "))
}

// RemoveBoilerplate strips structural page chrome from the document in
// place: elements matching the selector taxonomy, all script/style/noscript/
// iframe elements, style and event-handler attributes, and class attributes
// carrying script/ad/tracking tokens.
//
// A structural match whose text exceeds the content budget is preserved
// (content volume outranks structural classification); unwanted matches are
// removed unconditionally.
func RemoveBoilerplate(doc *goquery.Document) {
	for _, rule := range boilerplateRules {
		rule := rule
		doc.Find(rule.Selector).Each(func(_ int, s *goquery.Selection) {
			if rule.Category != CategoryUnwanted && TextLength(s) > contentBudget {
				return
			}
			s.Remove()
		})
	}

	doc.Find("script, style, noscript, iframe").Remove()

	stripAttributes(doc.Selection)
}

// stripAttributes removes style attributes, event-handler (on*) attributes,
// and suspicious class attributes from every element under s.
func stripAttributes(s *goquery.Selection) {
	s.Find("*").Each(func(_ int, el *goquery.Selection) {
		if len(el.Nodes) == 0 {
			return
		}

		var remove []string
		for _, attr := range el.Nodes[0].Attr {
			key := strings.ToLower(attr.Key)
			switch {
			case key == "style":
				remove = append(remove, attr.Key)
			case strings.HasPrefix(key, "on"):
				remove = append(remove, attr.Key)
			case key == "class" && hasSuspiciousClass(attr.Val):
				remove = append(remove, attr.Key)
			}
		}
		for _, key := range remove {
			el.RemoveAttr(key)
		}
	})
}

func hasSuspiciousClass(class string) bool {
	for _, token := range suspiciousClassTokens {
		if strings.Contains(class, token) {
			return true
		}
	}
	return false
}
