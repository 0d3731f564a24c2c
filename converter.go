package docmacros

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms the content of an HTML page source into Markdown
	// so it can be rendered like any other page.
	Convert(html string) (string, error)
}
