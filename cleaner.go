package web2llm

// CleanResult holds the output of the content-extraction stage.
type CleanResult struct {
	// CleanHTML is a full HTML document containing the extracted main
	// content with boilerplate removed.
	CleanHTML string

	// Title is the chosen page title. Defaults to the page <title>
	// unless the primary extractor supplies a strictly longer one.
	Title string

	// ContentTextLength is the text length of the extracted content
	// itself, excluding the title heading the clean document injects.
	// Zero means nothing survived cleaning and recovery; such a page has
	// no content worth reporting as a success.
	ContentTextLength int
}

// Cleaner extracts the main content of a raw HTML page.
// Clean never fails on malformed or adversarial input: on internal failure
// it returns the raw HTML unmodified with title "Untitled". An error is
// returned only for empty input.
type Cleaner interface {
	Clean(rawHTML, sourceURL string) (*CleanResult, error)
}
