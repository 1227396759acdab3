package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// StructuralMarkdown renders HTML as Markdown through a deterministic
// element-by-element walk: title, headings, paragraphs, lists, tables,
// blockquotes, code blocks, images, links, then supplemental text blocks.
// Emission follows that order, not document order; this is a deliberate
// simplification, not a layout-preserving renderer.
func StructuralMarkdown(htmlStr string) string {
	doc, err := Parse(htmlStr)
	if err != nil {
		return ""
	}

	var b strings.Builder

	if title := collapseText(doc.Find("title").First().Text()); title != "" {
		fmt.Fprintf(&b, "# %s\n\n", title)
	}

	for level := 1; level <= 6; level++ {
		doc.Find(fmt.Sprintf("h%d", level)).Each(func(_ int, h *goquery.Selection) {
			if text := collapseText(h.Text()); text != "" {
				fmt.Fprintf(&b, "%s %s\n\n", strings.Repeat("#", level), text)
			}
		})
	}

	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := collapseText(p.Text()); text != "" {
			fmt.Fprintf(&b, "%s\n\n", text)
		}
	})

	doc.Find("ul").Each(func(_ int, ul *goquery.Selection) {
		ul.Find("li").Each(func(_ int, li *goquery.Selection) {
			fmt.Fprintf(&b, "* %s\n", collapseText(li.Text()))
		})
		b.WriteString("\n")
	})

	doc.Find("ol").Each(func(_ int, ol *goquery.Selection) {
		ol.Find("li").Each(func(i int, li *goquery.Selection) {
			fmt.Fprintf(&b, "%d. %s\n", i+1, collapseText(li.Text()))
		})
		b.WriteString("\n")
	})

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			var cells []string
			tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, collapseText(cell.Text()))
			})
			if len(cells) > 0 {
				fmt.Fprintf(&b, "| %s |\n", strings.Join(cells, " | "))
			}
		})
		b.WriteString("\n")
	})

	doc.Find("blockquote").Each(func(_ int, bq *goquery.Selection) {
		for _, line := range strings.Split(strings.TrimSpace(bq.Text()), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				fmt.Fprintf(&b, "> %s\n", line)
			}
		}
		b.WriteString("\n")
	})

	doc.Find("pre").Each(func(_ int, pre *goquery.Selection) {
		fmt.Fprintf(&b, "```\n%s\n```\n\n", strings.TrimSpace(pre.Text()))
	})

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		if src == "" {
			return
		}
		alt, _ := img.Attr("alt")
		fmt.Fprintf(&b, "![%s](%s)\n\n", alt, src)
	})

	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		text := collapseText(a.Text())
		if href != "" && text != "" {
			fmt.Fprintf(&b, "[%s](%s)\n\n", text, href)
		}
	})

	// Supplemental blocks: containers with substantial text that none of
	// the handled elements cover become plain paragraphs.
	doc.Find("div, article, section, main").Each(func(_ int, s *goquery.Selection) {
		if s.Find("h1, h2, h3, h4, h5, h6, p, ul, ol, table").Length() > 0 {
			return
		}
		if text := collapseText(s.Text()); len(text) > 100 {
			fmt.Fprintf(&b, "%s\n\n", text)
		}
	})

	return b.String()
}

// PlainText extracts all text from HTML with blank-line separators between
// text blocks, skipping script/style/meta/noscript content. This is the
// last-resort conversion strategy.
func PlainText(htmlStr string) string {
	doc, err := Parse(htmlStr)
	if err != nil {
		return ""
	}

	var segments []string
	for _, n := range doc.Selection.Nodes {
		collectTextSegments(n, &segments)
	}

	return strings.Join(segments, "\n\n")
}

func collectTextSegments(n *html.Node, segments *[]string) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "meta", "noscript", "head":
			return
		}
	}
	if n.Type == html.TextNode {
		if text := collapseText(n.Data); text != "" {
			*segments = append(*segments, text)
		}
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectTextSegments(child, segments)
	}
}
