package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	web2llm "github.com/yamasammy/Web2LLM"
)

// ResolveURLs rewrites relative link and image targets as absolute URLs
// resolved against baseURL. Anchor-only, mailto:, tel: and data: targets
// are left alone. With an empty baseURL the input is returned unchanged.
func ResolveURLs(htmlStr, baseURL string) (string, error) {
	if baseURL == "" {
		return htmlStr, nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", web2llm.Errorf(web2llm.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := Parse(htmlStr)
	if err != nil {
		return "", web2llm.Errorf(web2llm.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if hasPrefixAny(href, "http://", "https://", "mailto:", "tel:", "#") {
			return
		}
		if resolved := resolveRef(base, href); resolved != "" {
			s.SetAttr("href", resolved)
		}
	})

	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if hasPrefixAny(src, "http://", "https://", "data:") {
			return
		}
		if resolved := resolveRef(base, src); resolved != "" {
			s.SetAttr("src", resolved)
		}
	})

	return doc.Html()
}

func resolveRef(base *url.URL, ref string) string {
	parsed, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return base.ResolveReference(parsed).String()
}

func hasPrefixAny(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
