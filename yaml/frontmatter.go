package yaml

import (
	"strings"

	"github.com/fwojciec/docmacros"
	"gopkg.in/yaml.v3"
)

// Ensure FrontMatterParser implements docmacros.FrontMatterParser at compile time.
var _ docmacros.FrontMatterParser = (*FrontMatterParser)(nil)

// FrontMatterParser parses YAML front matter delimited by "---" lines.
type FrontMatterParser struct{}

// NewFrontMatterParser creates a new FrontMatterParser.
func NewFrontMatterParser() *FrontMatterParser {
	return &FrontMatterParser{}
}

// ParseFrontMatter splits src into front matter and body.
// Returns EINVALID when the front matter is not a YAML mapping.
func (p *FrontMatterParser) ParseFrontMatter(src string) (*docmacros.FrontMatter, string, error) {
	fm, body, ok := splitFrontMatter(src)
	if !ok {
		return nil, src, nil
	}

	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(fm), &meta); err != nil {
		return nil, "", docmacros.Errorf(docmacros.EINVALID, "parse front matter: %v", err)
	}

	title, _ := meta["title"].(string)
	return &docmacros.FrontMatter{
		Title: strings.TrimSpace(title),
		Meta:  meta,
	}, body, nil
}

// splitFrontMatter separates a leading "---" delimited block from the body.
// It reports false when the source has no complete block.
func splitFrontMatter(src string) (fm, body string, ok bool) {
	src = strings.TrimPrefix(src, "\ufeff")
	lines := strings.Split(src, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", src, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm = strings.Join(lines[1:i], "\n")
			body = strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\r\n"), true
		}
	}
	return "", src, false
}
