package web2llm

import (
	"regexp"
	"strings"
)

// The sanitizer is a fixed, order-dependent sequence of textual
// substitutions. It is a best-effort noise filter operating on text, not an
// HTML tokenizer; it can both under- and over-delete on adversarial input.
var (
	reExtraNewlines  = regexp.MustCompile(`\n{3,}`)
	reBrokenLink     = regexp.MustCompile(`\[(.+?)\]\s*\[\]`)
	reScriptBlock    = regexp.MustCompile(`(?s)<script[^>]*>.*?</script>`)
	reStyleBlock     = regexp.MustCompile(`(?s)<style[^>]*>.*?</style>`)
	reCDATA          = regexp.MustCompile(`(?s)<!\[CDATA\[.*?\]\]>`)
	reLineBreakTag   = regexp.MustCompile(`<br\s*/?>`)
	reHTMLTag        = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)
	reExtraSpaces    = regexp.MustCompile(` {2,}`)
	reHTMLComment    = regexp.MustCompile(`(?s)<!--.*?-->`)
	reNamedEntity    = regexp.MustCompile(`&[a-zA-Z]+;`)
	reScriptFence    = regexp.MustCompile("(?s)```(?:javascript|js|css|style).*?```")
	reCSSDeclLine    = regexp.MustCompile(`(?m)^[a-z-]+:\s*[^;\n]+;\s*$`)
	reVarDeclLine    = regexp.MustCompile(`(?m)^(?:var|let|const)\s+[a-zA-Z0-9_$]+\s*=.*$`)
	reFuncDeclLine   = regexp.MustCompile(`(?m)^function\s+[a-zA-Z0-9_$]+\s*\(.*$`)
	reLoneBraceLine  = regexp.MustCompile(`(?m)^\s*[{}]\s*$`)
	rePunctOnlyLine  = regexp.MustCompile(`(?m)^\s*[;:.,_*+#-]+\s*$`)
)

// SanitizeMarkdown removes residual markup, script/style remnants and
// formatting noise from a Markdown candidate. Running it twice on its own
// output yields the same output.
func SanitizeMarkdown(markdown string) string {
	// Collapse runs of blank lines first so later line-anchored patterns
	// see normalized input.
	markdown = reExtraNewlines.ReplaceAllString(markdown, "\n\n")

	// Malformed reference links [text][] degrade to plain text.
	markdown = reBrokenLink.ReplaceAllString(markdown, "$1")

	// Script, style and CDATA blocks survive some converters wholesale.
	markdown = reScriptBlock.ReplaceAllString(markdown, "")
	markdown = reStyleBlock.ReplaceAllString(markdown, "")
	markdown = reCDATA.ReplaceAllString(markdown, "")

	// <br> becomes a newline; every other remaining tag is dropped.
	// The order matters: the generic tag pattern would otherwise swallow
	// <br> before it can be converted.
	markdown = reLineBreakTag.ReplaceAllString(markdown, "\n")
	markdown = reHTMLTag.ReplaceAllString(markdown, "")

	markdown = reExtraSpaces.ReplaceAllString(markdown, " ")

	// Comments and named entities; entities are replaced with a space so
	// words separated by &nbsp; don't fuse.
	markdown = reHTMLComment.ReplaceAllString(markdown, "")
	markdown = reNamedEntity.ReplaceAllString(markdown, " ")

	// Code fences tagged as script or style content.
	markdown = reScriptFence.ReplaceAllString(markdown, "")

	// Lines shaped like CSS declarations or JS declarations.
	markdown = reCSSDeclLine.ReplaceAllString(markdown, "")
	markdown = reVarDeclLine.ReplaceAllString(markdown, "")
	markdown = reFuncDeclLine.ReplaceAllString(markdown, "")
	markdown = reLoneBraceLine.ReplaceAllString(markdown, "")

	// Deletions above can reintroduce runs of spaces and blank lines.
	markdown = reExtraSpaces.ReplaceAllString(markdown, " ")
	markdown = reExtraNewlines.ReplaceAllString(markdown, "\n\n")

	// Lines consisting solely of punctuation or markup noise. Removing
	// them leaves blank lines behind, so collapse once more to keep the
	// whole pass idempotent.
	markdown = rePunctOnlyLine.ReplaceAllString(markdown, "")
	markdown = reExtraNewlines.ReplaceAllString(markdown, "\n\n")

	return strings.TrimSpace(markdown)
}
