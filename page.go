package docmacros

import "context"

// RenderedPage is a page's final output.
type RenderedPage struct {
	// URL is the page's output URI relative to the site root.
	URL     string
	Content string
}

// PageStore persists rendered pages with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *RenderedPage) error
	Commit() error
	Abort() error
}

// HTMLRenderer turns rendered Markdown into HTML.
type HTMLRenderer interface {
	RenderHTML(markdown string) (string, error)
}

// FrontMatter is the metadata block at the top of a Markdown source.
type FrontMatter struct {
	Title string
	Meta  map[string]any
}

// FrontMatterParser splits a Markdown source into front matter and body.
type FrontMatterParser interface {
	// ParseFrontMatter returns the parsed front matter and the remaining body.
	// Sources without front matter return a nil FrontMatter and the source
	// unchanged.
	ParseFrontMatter(src string) (*FrontMatter, string, error)
}
