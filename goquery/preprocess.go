package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// PrepareForConversion normalizes clean HTML before Markdown conversion:
// removes script/style/noscript/iframe/object/embed/form elements, strips
// style and event-handler attributes, promotes leaf-like divs to paragraphs,
// and unwraps attribute-less spans.
func PrepareForConversion(htmlStr string) (string, error) {
	doc, err := Parse(htmlStr)
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, iframe, object, embed, form").Remove()

	stripAttributes(doc.Selection)

	// Divs that behave like paragraphs convert better as paragraphs.
	doc.Find("div").Each(func(_ int, s *goquery.Selection) {
		if s.Find("div, p, h1, h2, h3, h4, h5, h6, table, ul, ol").Length() == 0 {
			for _, n := range s.Nodes {
				n.Data = "p"
			}
		}
	})

	// Bare spans carry no information; their children stand alone.
	doc.Find("span").Each(func(_ int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			if len(n.Attr) == 0 {
				unwrapNode(n)
			}
		}
	})

	return doc.Html()
}

// unwrapNode replaces a node with its children in the parent's child list.
func unwrapNode(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for child := n.FirstChild; child != nil; {
		next := child.NextSibling
		n.RemoveChild(child)
		parent.InsertBefore(child, n)
		child = next
	}
	parent.RemoveChild(n)
}
