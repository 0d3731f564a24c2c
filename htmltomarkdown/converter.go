// Package htmltomarkdown normalizes HTML page sources to Markdown.
package htmltomarkdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/docmacros"
)

// Ensure Converter implements docmacros.Converter at compile time.
var _ docmacros.Converter = (*Converter)(nil)

// templateAction matches a template action such as {{ global_nav }}.
var templateAction = regexp.MustCompile(`(?s)\{\{.*?\}\}`)

// Converter wraps html-to-markdown to convert HTML to Markdown.
//
// Template actions in the source pass through verbatim so that macros in
// HTML pages still execute after conversion.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docmacros.Errorf(docmacros.EINVALID, "empty HTML input")
	}

	protected, restore := protectActions(html)

	result, err := c.conv.ConvertString(protected)
	if err != nil {
		return "", err
	}

	return restore.Replace(result), nil
}

// protectActions swaps template actions for placeholders the converter
// leaves alone, returning a replacer that puts them back.
func protectActions(html string) (string, *strings.Replacer) {
	var pairs []string
	protected := templateAction.ReplaceAllStringFunc(html, func(action string) string {
		placeholder := fmt.Sprintf("docmacrosaction%dx", len(pairs)/2)
		pairs = append(pairs, placeholder, action)
		return placeholder
	})
	return protected, strings.NewReplacer(pairs...)
}
