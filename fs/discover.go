package fs

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docmacros"
)

// assetsDir holds non-page files (vocabularies, images) at the docs root.
const assetsDir = "assets"

// DiscoverNav builds a navigation tree from the layout of docsDir.
//
// Within each directory the index page comes first, then the other pages,
// then one section per subdirectory, each group sorted by name. Hidden
// entries, the root assets directory and directories without pages are
// skipped. Pages are returned unresolved.
func DiscoverNav(docsDir string, directoryURLs bool) ([]docmacros.NavItem, error) {
	if _, err := os.Stat(docsDir); os.IsNotExist(err) {
		return nil, docmacros.Errorf(docmacros.ENOTFOUND, "docs directory not found: %s", docsDir)
	}
	return discoverDir(docsDir, "", directoryURLs)
}

func discoverDir(docsDir, rel string, directoryURLs bool) ([]docmacros.NavItem, error) {
	entries, err := os.ReadDir(filepath.Join(docsDir, filepath.FromSlash(rel)))
	if err != nil {
		return nil, err
	}

	var index *docmacros.Page
	var pages []docmacros.NavItem
	var sections []docmacros.NavItem

	// os.ReadDir returns entries sorted by name
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		src := path.Join(rel, name)

		if e.IsDir() {
			if rel == "" && name == assetsDir {
				continue
			}
			children, err := discoverDir(docsDir, src, directoryURLs)
			if err != nil {
				return nil, err
			}
			if len(children) == 0 {
				continue
			}
			sections = append(sections, &docmacros.Section{
				Title:    docmacros.TitleFromPath(src + "/index.md"),
				Children: children,
			})
			continue
		}

		if !docmacros.IsDocFile(name) {
			continue
		}
		page := docmacros.NewPage(docsDir, src, "", directoryURLs)
		stem := strings.TrimSuffix(name, path.Ext(name))
		if stem == "index" || strings.EqualFold(stem, "readme") {
			// index.md wins over README.md
			if index == nil || stem == "index" {
				index = page
			}
			continue
		}
		pages = append(pages, page)
	}

	items := make([]docmacros.NavItem, 0, len(pages)+len(sections)+1)
	if index != nil {
		items = append(items, index)
	}
	items = append(items, pages...)
	return append(items, sections...), nil
}
