package docmacros

import (
	"context"
	"path"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NavItem is an entry in a site's navigation tree.
// The set of implementations is closed: *Section and *Page.
type NavItem interface {
	navItem()
}

// Section groups child navigation items. Sections are not linkable.
type Section struct {
	Title    string
	Children []NavItem
}

func (*Section) navItem() {}

// File identifies the source document behind a page.
type File struct {
	// SrcURI is the docs-relative, slash-separated source path (e.g. "guide/install.md").
	SrcURI string

	// AbsPath is the source location on disk.
	AbsPath string
}

// Page is a single linkable document.
//
// A page starts unresolved: its title may be empty and its content is not
// loaded. A PageResolver reads the source and calls Resolve. Resolution is
// not safe for concurrent use; resolve pages before sharing a tree across
// goroutines.
type Page struct {
	Title      string
	File       File
	IsHomepage bool

	// URL is the page's output URI relative to the site root.
	URL string

	// Content is the page source as Markdown. Set on resolution.
	Content string

	resolved bool
}

func (*Page) navItem() {}

// Resolved reports whether the page source has been read.
func (p *Page) Resolved() bool {
	return p.resolved
}

// Resolve completes the page with data read from its source.
// An explicit title (e.g. one given in the site nav) takes precedence.
func (p *Page) Resolve(title, content string) {
	if p.Title == "" {
		p.Title = title
	}
	p.Content = content
	p.resolved = true
}

// PageResolver reads page sources on demand.
type PageResolver interface {
	// ResolvePage loads the page's source and resolves it.
	// Already resolved pages are left untouched.
	// Returns ENOTFOUND if the source does not exist.
	ResolvePage(ctx context.Context, page *Page) error
}

// NewPage returns an unresolved page for the docs-relative source path.
// The output URI is derived from the source path; the page at the site root
// is the homepage.
func NewPage(docsDir, src, title string, directoryURLs bool) *Page {
	src = strings.TrimPrefix(path.Clean(filepath.ToSlash(src)), "/")
	uri := OutputURI(src, directoryURLs)
	return &Page{
		Title: title,
		File: File{
			SrcURI:  src,
			AbsPath: filepath.Join(docsDir, filepath.FromSlash(src)),
		},
		URL:        uri,
		IsHomepage: uri == "" || uri == "index.html",
	}
}

// IsDocFile reports whether a file name is a page source.
func IsDocFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".markdown", ".html", ".htm":
		return true
	}
	return false
}

// isIndex reports whether the stem names a directory index page.
func isIndex(stem string) bool {
	return stem == "index" || strings.EqualFold(stem, "readme")
}

// OutputURI returns the output URI for a docs-relative source path.
//
// With directory URLs: index.md → "", about.md → "about/",
// guide/index.md → "guide/". Without: index.md → "index.html",
// about.md → "about.html".
func OutputURI(src string, directoryURLs bool) string {
	dir, file := path.Split(src)
	stem := strings.TrimSuffix(file, path.Ext(file))

	if !directoryURLs {
		if isIndex(stem) {
			return dir + "index.html"
		}
		return dir + stem + ".html"
	}
	if isIndex(stem) {
		return dir
	}
	return dir + stem + "/"
}

// TitleFromPath derives a page title from its source path.
// Index pages take their directory's name; the root index is "Home".
func TitleFromPath(src string) string {
	dir, file := path.Split(src)
	stem := strings.TrimSuffix(file, path.Ext(file))
	if isIndex(stem) {
		dir = strings.TrimSuffix(dir, "/")
		if dir == "" {
			return "Home"
		}
		stem = path.Base(dir)
	}

	title := strings.NewReplacer("-", " ", "_", " ").Replace(stem)
	r, size := utf8.DecodeRuneInString(title)
	if r == utf8.RuneError {
		return title
	}
	return string(unicode.ToUpper(r)) + title[size:]
}

// CollectPages returns every page in the tree in depth-first pre-order.
func CollectPages(items []NavItem) []*Page {
	var pages []*Page
	for _, item := range items {
		switch item := item.(type) {
		case *Section:
			pages = append(pages, CollectPages(item.Children)...)
		case *Page:
			pages = append(pages, item)
		}
	}
	return pages
}

const navIndent = "    "

// RenderNav renders a navigation tree as a nested Markdown list, one line per
// node in depth-first pre-order. Each level indents by four spaces. Sections
// render their title; pages render a link to their output URI. The homepage
// is omitted.
//
// Unresolved pages are resolved on demand. A nil resolver skips resolution.
// Resolution errors and unknown item kinds abort the render.
func RenderNav(ctx context.Context, resolver PageResolver, items []NavItem) ([]string, error) {
	return renderNav(ctx, resolver, items, 0, nil)
}

func renderNav(ctx context.Context, resolver PageResolver, items []NavItem, depth int, lines []string) ([]string, error) {
	indent := strings.Repeat(navIndent, depth)

	for _, item := range items {
		switch item := item.(type) {
		case *Section:
			lines = append(lines, indent+"- "+item.Title)

			var err error
			if lines, err = renderNav(ctx, resolver, item.Children, depth+1, lines); err != nil {
				return nil, err
			}
		case *Page:
			if item.IsHomepage {
				continue
			}
			if !item.Resolved() && resolver != nil {
				if err := resolver.ResolvePage(ctx, item); err != nil {
					return nil, err
				}
			}
			lines = append(lines, indent+"- ["+item.Title+"]("+item.URL+")")
		default:
			return nil, Errorf(EINTERNAL, "unexpected navigation item type: %T", item)
		}
	}

	return lines, nil
}
