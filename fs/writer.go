// Package fs persists scrape results as Markdown files, with cleaned-HTML
// siblings for conversions flagged as suspicious.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	web2llm "github.com/yamasammy/Web2LLM"
)

// maxFilenameLen caps title-derived filenames.
const maxFilenameLen = 100

// Filename derives the output filename (without extension) for a result.
// The title is made filesystem-safe (spaces become dashes, other unsafe
// characters are dropped) and capped at 100 characters; when nothing usable
// remains, the fallback is hostname_path derived from the URL.
func Filename(result *web2llm.Result, override string) string {
	if override != "" {
		if name := sanitizeName(override); name != "" {
			return name
		}
	}
	if name := sanitizeName(result.Title); name != "" {
		return name
	}
	return urlFilename(result.URL)
}

// sanitizeName makes a string safe to use as a filename: letters, digits,
// dashes and underscores survive, spaces become dashes, everything else is
// dropped.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == ' ':
			b.WriteRune('-')
		case r == '-' || r == '_':
			b.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	name := b.String()
	if len(name) > maxFilenameLen {
		name = name[:maxFilenameLen]
	}
	return strings.Trim(name, "-")
}

// urlFilename builds a hostname_path fallback filename from a URL.
func urlFilename(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "page"
	}
	name := u.Host
	if path := strings.Trim(u.Path, "/"); path != "" {
		name += "_" + strings.ReplaceAll(path, "/", "_")
	}
	name = strings.ReplaceAll(name, ":", "_")
	if len(name) > maxFilenameLen {
		name = name[:maxFilenameLen]
	}
	return name
}

// FormatMarkdown formats a result with YAML frontmatter.
func FormatMarkdown(result *web2llm.Result) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(result.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(result.Title)
	b.WriteString("\nscraped: ")
	b.WriteString(time.Now().Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(result.Markdown)
	return b.String()
}

// Ensure Writer implements web2llm.ResultWriter at compile time.
var _ web2llm.ResultWriter = (*Writer)(nil)

// Writer writes scrape results to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteMarkdown writes the result's markdown with frontmatter and returns
// the path written.
func (w *Writer) WriteMarkdown(ctx context.Context, result *web2llm.Result, name string) (string, error) {
	if err := result.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, Filename(result, name)+".md")
	if err := os.WriteFile(path, []byte(FormatMarkdown(result)), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteHTML writes the cleaned HTML as a sibling of the markdown file and
// returns the path written.
func (w *Writer) WriteHTML(ctx context.Context, result *web2llm.Result, cleanHTML, name string) (string, error) {
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, Filename(result, name)+".html")
	if err := os.WriteFile(path, []byte(cleanHTML), 0644); err != nil {
		return "", err
	}
	return path, nil
}
