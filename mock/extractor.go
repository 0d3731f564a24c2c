package mock

import "github.com/fwojciec/docmacros"

var _ docmacros.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docmacros.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docmacros.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docmacros.ExtractResult, error) {
	return e.ExtractFn(html)
}
