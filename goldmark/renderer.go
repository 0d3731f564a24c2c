// Package goldmark renders Markdown pages to sanitized HTML.
package goldmark

import (
	"bytes"

	"github.com/fwojciec/docmacros"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Ensure Renderer implements docmacros.HTMLRenderer at compile time.
var _ docmacros.HTMLRenderer = (*Renderer)(nil)

// Renderer converts Markdown to HTML with GitHub flavored extensions and
// sanitizes the result.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &Renderer{md: md, policy: newPagePolicy()}
}

// RenderHTML converts rendered Markdown into sanitized HTML.
func (r *Renderer) RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", docmacros.Errorf(docmacros.EINTERNAL, "failed to render markdown: %v", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

// Raw HTML passes through goldmark and is cleaned here instead, so pages
// converted from HTML sources keep their markup.
func newPagePolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	policy.AllowAttrs("class").OnElements("code", "pre", "span", "div", "figure", "figcaption")
	policy.AllowAttrs("align").OnElements("th", "td")
	return policy
}
