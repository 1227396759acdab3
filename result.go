package web2llm

import "context"

// Result is the outcome of processing a single URL.
type Result struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Markdown string `json:"markdown"`

	// ContentHash is the xxhash of the final markdown, hex-encoded.
	ContentHash string `json:"contentHash,omitempty"`

	// RawHTMLRetained reports that the cleaned HTML was kept alongside
	// the markdown because the conversion looked suspicious (under 500
	// characters or still containing angle brackets).
	RawHTMLRetained bool `json:"rawHtmlRetained"`

	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	Saved         bool   `json:"saved"`
	SavedPath     string `json:"savedPath,omitempty"`
	HTMLSaved     bool   `json:"htmlSaved"`
	HTMLSavedPath string `json:"htmlSavedPath,omitempty"`
}

// Validate returns an error if the result contains invalid fields.
func (r *Result) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "result URL required")
	}
	if r.Success && r.Markdown == "" {
		return Errorf(EINVALID, "successful result requires markdown content")
	}
	return nil
}

// BatchResult aggregates per-URL outcomes of a batch run.
// Partial success is a first-class outcome: one URL's failure never aborts
// the others.
type BatchResult struct {
	Total     int       `json:"total"`
	Succeeded int       `json:"success"`
	Results   []*Result `json:"results"`
}

// ResultWriter persists a processed page.
type ResultWriter interface {
	// WriteMarkdown persists the markdown document and returns the path
	// it was written to. The filename is derived from the result's title
	// (or URL) unless name overrides it.
	WriteMarkdown(ctx context.Context, result *Result, name string) (string, error)

	// WriteHTML persists the cleaned HTML as a sibling file for manual
	// recovery and returns the path it was written to.
	WriteHTML(ctx context.Context, result *Result, cleanHTML, name string) (string, error)
}
