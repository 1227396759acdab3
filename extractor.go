package web2llm

// ExtractResult holds the output of a primary content extractor.
type ExtractResult struct {
	// Title is the page title as determined by the extractor.
	Title string

	// ContentHTML is the extractor's best-guess main content fragment.
	ContentHTML string
}

// Extractor locates the main content of an HTML page.
// Implementations are readability-style black boxes: the pipeline pre- and
// post-processes their output but never depends on their internal scoring.
type Extractor interface {
	// Extract processes raw HTML and returns the main content fragment
	// and a title. An empty result is valid and means the extractor
	// found nothing it considers main content.
	Extract(html string) (*ExtractResult, error)
}
