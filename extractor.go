package docmacros

// ExtractResult holds what a page needs from an HTML source.
type ExtractResult struct {
	// Title comes from the document title or, failing that, its first H1.
	Title string

	// ContentHTML is the document's main content.
	ContentHTML string
}

// Extractor pulls the title and main content out of HTML page sources.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
