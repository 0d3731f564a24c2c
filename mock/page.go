package mock

import (
	"context"

	"github.com/fwojciec/docmacros"
)

// Compile-time interface verification.
var (
	_ docmacros.PageResolver      = (*PageResolver)(nil)
	_ docmacros.PageStore         = (*PageStore)(nil)
	_ docmacros.HTMLRenderer      = (*HTMLRenderer)(nil)
	_ docmacros.FrontMatterParser = (*FrontMatterParser)(nil)
)

// PageResolver is a mock implementation of docmacros.PageResolver.
type PageResolver struct {
	ResolvePageFn func(ctx context.Context, page *docmacros.Page) error
}

func (r *PageResolver) ResolvePage(ctx context.Context, page *docmacros.Page) error {
	return r.ResolvePageFn(ctx, page)
}

// PageStore is a mock implementation of docmacros.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *docmacros.RenderedPage) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *docmacros.RenderedPage) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}

// HTMLRenderer is a mock implementation of docmacros.HTMLRenderer.
type HTMLRenderer struct {
	RenderHTMLFn func(markdown string) (string, error)
}

func (r *HTMLRenderer) RenderHTML(markdown string) (string, error) {
	return r.RenderHTMLFn(markdown)
}

// FrontMatterParser is a mock implementation of docmacros.FrontMatterParser.
type FrontMatterParser struct {
	ParseFrontMatterFn func(src string) (*docmacros.FrontMatter, string, error)
}

func (p *FrontMatterParser) ParseFrontMatter(src string) (*docmacros.FrontMatter, string, error) {
	return p.ParseFrontMatterFn(src)
}
