package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var reWidthPercent = regexp.MustCompile(`width\s*:\s*(\d+)%`)

// ShouldDetectPatterns is the content-loss guard: pattern detection may only
// run while structural removal retained more than 70% of the original text.
// If simple removal already destroyed more, the aggressive pass is skipped
// to avoid compounding loss.
func ShouldDetectPatterns(textLenBefore, textLenAfter int) bool {
	return float64(textLenAfter) > lossGuardRetention*float64(textLenBefore)
}

// DetectContentPatterns removes likely navigation and sidebar elements using
// content-based heuristics: link density, navigation keywords, structural
// position, and narrow explicit widths. Each heuristic mutates the document
// before the next one runs.
func DetectContentPatterns(doc *goquery.Document) {
	removeLinkDenseBlocks(doc)
	removeKeywordNavBlocks(doc)
	removePositionalChrome(doc)
	removeNarrowColumns(doc)
}

// removeLinkDenseBlocks removes container elements dominated by short links.
// A container with informative text outweighing its link noise (more than
// 50 characters per link on average) is preserved.
func removeLinkDenseBlocks(doc *goquery.Document) {
	doc.Find("div, section, ul, ol").Each(func(_ int, s *goquery.Selection) {
		links := s.Find("a")
		count := links.Length()
		if count <= linkDensityMinAnchors {
			return
		}

		short := 0
		links.Each(func(_ int, a *goquery.Selection) {
			if TextLength(a) < linkDensityShortTextMax {
				short++
			}
		})

		if float64(short) <= float64(count)*linkDensityShortFraction {
			return
		}
		if TextLength(s) > count*linkDensityCharsPerLink {
			return
		}
		s.Remove()
	})
}

// removeKeywordNavBlocks removes small link-heavy elements whose text
// mentions navigation terms. Content-bearing sections that merely mention
// navigation survive the 200-character cutoff.
func removeKeywordNavBlocks(doc *goquery.Document) {
	doc.Find("div, section, ul, ol").Each(func(_ int, s *goquery.Selection) {
		text := strings.ToLower(s.Text())
		if !containsAnyKeyword(text) {
			return
		}
		if s.Find("a").Length() <= keywordMinAnchors {
			return
		}
		if TextLength(s) < keywordTextMax {
			s.Remove()
		}
	})
}

// removePositionalChrome inspects only the first and last direct children of
// body, the usual homes of residual navigation and footers.
func removePositionalChrome(doc *goquery.Document) {
	children := doc.Find("body").First().Children()
	if children.Length() == 0 {
		return
	}

	first := children.First()
	firstRemoved := false
	if nodeNameIn(first, "div", "nav") &&
		first.Find("h1, h2, article, p").Length() == 0 &&
		first.Find("a").Length() >= firstChildMinAnchors &&
		TextLength(first) < firstChildTextMax {
		first.Remove()
		firstRemoved = true
	}

	last := children.Last()
	if firstRemoved && last.Length() > 0 && first.Length() > 0 && last.Nodes[0] == first.Nodes[0] {
		return
	}
	if nodeNameIn(last, "div", "footer") &&
		last.Find("h1, h2, article").Length() == 0 {
		mentionsCopyright := strings.Contains(strings.ToLower(last.Text()), "copyright")
		if mentionsCopyright ||
			(last.Find("a").Length() >= lastChildMinAnchors && TextLength(last) < lastChildTextMax) {
			last.Remove()
		}
	}
}

// removeNarrowColumns removes link-heavy elements styled to a narrow
// explicit width, the classic sidebar shape.
func removeNarrowColumns(doc *goquery.Document) {
	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		m := reWidthPercent.FindStringSubmatch(strings.ToLower(style))
		if m == nil {
			return
		}
		width, err := strconv.Atoi(m[1])
		if err != nil || width >= narrowWidthPercentMax {
			return
		}
		if s.Find("a").Length() < narrowMinAnchors {
			return
		}
		if s.Find("p, article").Length() > 0 {
			return
		}
		if TextLength(s) < narrowTextMax {
			s.Remove()
		}
	})
}

func containsAnyKeyword(text string) bool {
	for _, kw := range navKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func nodeNameIn(s *goquery.Selection, names ...string) bool {
	name := goquery.NodeName(s)
	for _, n := range names {
		if name == n {
			return true
		}
	}
	return false
}
