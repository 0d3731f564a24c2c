// Package goquery extracts titles and main content from HTML page sources.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docmacros"
)

// Ensure Extractor implements docmacros.Extractor at compile time.
var _ docmacros.Extractor = (*Extractor)(nil)

// contentSelectors are tried in order; the first match holds the main content.
var contentSelectors = []string{
	"main",
	"article",
	"[role=\"main\"]",
	".md-content",
	".content",
	".doc-content",
}

// chromeSelectors match page furniture that never belongs in content.
const chromeSelectors = "script, style, noscript, nav, aside, footer, header, [role=\"navigation\"]"

// Extractor reads HTML page sources with goquery.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the document title and its main content.
// The title is the <title> element or, failing that, the first <h1>.
// The content is the first main-content region found, else the body with
// navigation chrome removed.
func (e *Extractor) Extract(html string) (*docmacros.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docmacros.Errorf(docmacros.EINVALID, "failed to parse HTML: %v", err)
	}

	title := collapseSpace(doc.Find("head title").First().Text())
	if title == "" {
		title = collapseSpace(doc.Find("h1").First().Text())
	}

	content := e.content(doc)
	content.Find(chromeSelectors).Remove()

	contentHTML, err := content.Html()
	if err != nil {
		return nil, docmacros.Errorf(docmacros.EINTERNAL, "failed to render content HTML: %v", err)
	}

	return &docmacros.ExtractResult{
		Title:       title,
		ContentHTML: strings.TrimSpace(contentHTML),
	}, nil
}

func (e *Extractor) content(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return doc.Find("body")
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
