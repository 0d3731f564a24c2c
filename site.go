package docmacros

import "strings"

// Site is the configuration of a documentation site.
type Site struct {
	Name string `json:"name"`

	// DocsDir holds page sources and assets.
	DocsDir string `json:"docsDir"`

	// SiteDir receives rendered pages.
	SiteDir string `json:"siteDir"`

	// UseDirectoryURLs maps about.md to about/ rather than about.html.
	UseDirectoryURLs bool `json:"useDirectoryUrls"`

	// Nav is the explicit navigation. When empty the tree is discovered
	// from DocsDir.
	Nav []NavEntry `json:"nav"`
}

// NavEntry is an explicitly configured navigation entry.
// An entry without a Path is a section.
type NavEntry struct {
	Title    string     `json:"title"`
	Path     string     `json:"path"`
	Children []NavEntry `json:"children"`
}

// IsSection reports whether the entry groups children rather than naming a page.
func (e NavEntry) IsSection() bool {
	return e.Path == ""
}

// Validate returns an error if the site contains invalid fields.
func (s *Site) Validate() error {
	if s.DocsDir == "" {
		return Errorf(EINVALID, "site docs directory required")
	}
	if s.SiteDir == "" {
		return Errorf(EINVALID, "site output directory required")
	}
	return validateNav(s.Nav)
}

func validateNav(entries []NavEntry) error {
	for _, e := range entries {
		if e.IsSection() {
			if e.Title == "" {
				return Errorf(EINVALID, "nav section title required")
			}
			if err := validateNav(e.Children); err != nil {
				return err
			}
			continue
		}
		if strings.Contains(e.Path, "://") {
			return Errorf(EINVALID, "nav entry %q: external links are not supported", e.Path)
		}
		if !IsDocFile(e.Path) {
			return Errorf(EINVALID, "nav entry %q: not a page source", e.Path)
		}
	}
	return nil
}

// NavTree builds the navigation tree from the explicit nav entries.
// All pages are returned unresolved.
func (s *Site) NavTree() []NavItem {
	return navTree(s.Nav, s.DocsDir, s.UseDirectoryURLs)
}

func navTree(entries []NavEntry, docsDir string, directoryURLs bool) []NavItem {
	items := make([]NavItem, 0, len(entries))
	for _, e := range entries {
		if e.IsSection() {
			items = append(items, &Section{
				Title:    e.Title,
				Children: navTree(e.Children, docsDir, directoryURLs),
			})
			continue
		}
		items = append(items, NewPage(docsDir, e.Path, e.Title, directoryURLs))
	}
	return items
}
