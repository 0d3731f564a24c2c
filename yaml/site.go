// Package yaml loads site configuration and page front matter from YAML.
package yaml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/docmacros"
	"gopkg.in/yaml.v3"
)

// Defaults applied when the config omits a directory.
const (
	DefaultDocsDir = "docs"
	DefaultSiteDir = "site"
)

type siteConfig struct {
	SiteName         string     `yaml:"site_name"`
	DocsDir          string     `yaml:"docs_dir"`
	SiteDir          string     `yaml:"site_dir"`
	UseDirectoryURLs *bool      `yaml:"use_directory_urls"`
	Nav              []navEntry `yaml:"nav"`
}

// navEntry decodes the three nav shapes:
//
//	- index.md                # page, title from source
//	- About: about.md         # page with explicit title
//	- Guide:                  # section
//	    - guide/install.md
type navEntry struct {
	Title    string
	Path     string
	Children []navEntry
}

func (e *navEntry) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		e.Path = value.Value
	case yaml.MappingNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("line %d: nav entry must map exactly one title", value.Line)
		}
		e.Title = value.Content[0].Value

		v := value.Content[1]
		switch v.Kind {
		case yaml.ScalarNode:
			if v.Value == "" {
				return fmt.Errorf("line %d: nav entry %q has no path", v.Line, e.Title)
			}
			e.Path = v.Value
		case yaml.SequenceNode:
			e.Children = []navEntry{}
			if err := v.Decode(&e.Children); err != nil {
				return err
			}
		default:
			return fmt.Errorf("line %d: nav entry %q must be a path or a list", v.Line, e.Title)
		}
	default:
		return fmt.Errorf("line %d: nav entry must be a path or a mapping", value.Line)
	}
	return nil
}

func toNavEntries(entries []navEntry) []docmacros.NavEntry {
	if entries == nil {
		return nil
	}
	out := make([]docmacros.NavEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, docmacros.NavEntry{
			Title:    e.Title,
			Path:     e.Path,
			Children: toNavEntries(e.Children),
		})
	}
	return out
}

// LoadSite reads the site config at path. Relative directories resolve
// against the config file's directory.
// Returns ENOTFOUND if the file does not exist and EINVALID if it does not
// describe a valid site.
func LoadSite(path string) (*docmacros.Site, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, docmacros.Errorf(docmacros.ENOTFOUND, "site config not found: %s", path)
	} else if err != nil {
		return nil, err
	}
	return ParseSite(data, filepath.Dir(path))
}

// ParseSite decodes a site config, resolving relative directories against base.
func ParseSite(data []byte, base string) (*docmacros.Site, error) {
	var cfg siteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, docmacros.Errorf(docmacros.EINVALID, "parse site config: %v", err)
	}

	site := &docmacros.Site{
		Name:             cfg.SiteName,
		DocsDir:          resolveDir(base, cfg.DocsDir, DefaultDocsDir),
		SiteDir:          resolveDir(base, cfg.SiteDir, DefaultSiteDir),
		UseDirectoryURLs: cfg.UseDirectoryURLs == nil || *cfg.UseDirectoryURLs,
		Nav:              toNavEntries(cfg.Nav),
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return site, nil
}

func resolveDir(base, dir, fallback string) string {
	if dir == "" {
		dir = fallback
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(base, dir)
}
