package docmacros

import (
	"regexp"
	"strings"
)

var (
	headingRe   = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+(.+?)[ \t]*$`)
	closingRe   = regexp.MustCompile(`[ \t]+#+$`)
	codeBlockRe = regexp.MustCompile("(?s)```.*?```|~~~.*?~~~")
)

// Heading is an ATX heading in a Markdown document.
type Heading struct {
	Level int
	Title string
}

// ExtractHeadings returns the ATX headings (H1-H6) of a Markdown document in
// document order. Headings inside fenced code blocks are ignored.
func ExtractHeadings(markdown string) []Heading {
	if markdown == "" {
		return nil
	}

	cleaned := codeBlockRe.ReplaceAllString(markdown, "")
	matches := headingRe.FindAllStringSubmatch(cleaned, -1)
	if len(matches) == 0 {
		return nil
	}

	headings := make([]Heading, 0, len(matches))
	for _, match := range matches {
		title := strings.TrimSpace(closingRe.ReplaceAllString(match[2], ""))
		if title == "" {
			continue
		}
		headings = append(headings, Heading{
			Level: len(match[1]),
			Title: title,
		})
	}
	return headings
}

// FirstTitle returns the text of the first H1 heading, or "" if there is none.
func FirstTitle(markdown string) string {
	for _, h := range ExtractHeadings(markdown) {
		if h.Level == 1 {
			return h.Title
		}
	}
	return ""
}
