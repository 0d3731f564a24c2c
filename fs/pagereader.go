package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/fwojciec/docmacros"
)

// Ensure PageReader implements docmacros.PageResolver at compile time.
var _ docmacros.PageResolver = (*PageReader)(nil)

// PageReader resolves pages by reading their sources from disk.
//
// Markdown sources have their front matter stripped. HTML sources are
// reduced to their main content and converted to Markdown. The title is the
// first of: an explicit nav title, the front matter or HTML title, the first
// H1, a title derived from the file name.
type PageReader struct {
	extractor   docmacros.Extractor
	converter   docmacros.Converter
	frontMatter docmacros.FrontMatterParser
}

// NewPageReader creates a new PageReader.
func NewPageReader(extractor docmacros.Extractor, converter docmacros.Converter, frontMatter docmacros.FrontMatterParser) *PageReader {
	return &PageReader{
		extractor:   extractor,
		converter:   converter,
		frontMatter: frontMatter,
	}
}

func (r *PageReader) ResolvePage(ctx context.Context, page *docmacros.Page) error {
	if page.Resolved() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(page.File.AbsPath)
	if errors.Is(err, os.ErrNotExist) {
		return docmacros.Errorf(docmacros.ENOTFOUND, "page source not found: %s", page.File.SrcURI)
	} else if err != nil {
		return err
	}

	var title, content string
	switch strings.ToLower(path.Ext(page.File.SrcURI)) {
	case ".html", ".htm":
		title, content, err = r.readHTML(string(data))
	default:
		title, content, err = r.readMarkdown(string(data))
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", page.File.SrcURI, err)
	}

	if title == "" {
		title = docmacros.FirstTitle(content)
	}
	if title == "" {
		title = docmacros.TitleFromPath(page.File.SrcURI)
	}

	page.Resolve(title, content)
	return nil
}

func (r *PageReader) readMarkdown(src string) (title, content string, err error) {
	fm, body, err := r.frontMatter.ParseFrontMatter(src)
	if err != nil {
		return "", "", err
	}
	if fm != nil {
		title = fm.Title
	}
	return title, body, nil
}

func (r *PageReader) readHTML(src string) (title, content string, err error) {
	result, err := r.extractor.Extract(src)
	if err != nil {
		return "", "", err
	}

	// Nothing to convert
	if strings.TrimSpace(result.ContentHTML) == "" {
		return result.Title, "", nil
	}

	content, err = r.converter.Convert(result.ContentHTML)
	if err != nil {
		return "", "", err
	}
	return result.Title, content, nil
}
