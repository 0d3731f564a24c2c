package mock

import "github.com/fwojciec/docmacros"

var _ docmacros.Converter = (*Converter)(nil)

// Converter is a mock implementation of docmacros.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
