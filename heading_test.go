package docmacros_test

import (
	"testing"

	"github.com/fwojciec/docmacros"
	"github.com/stretchr/testify/assert"
)

func TestExtractHeadings(t *testing.T) {
	t.Parallel()

	t.Run("extracts H1 through H6 headings", func(t *testing.T) {
		t.Parallel()

		markdown := `# H1 Title
## H2 Title
### H3 Title
#### H4 Title
##### H5 Title
###### H6 Title`

		headings := docmacros.ExtractHeadings(markdown)

		assert.Len(t, headings, 6)
		for i, h := range headings {
			assert.Equal(t, i+1, h.Level)
		}
		assert.Equal(t, "H1 Title", headings[0].Title)
	})

	t.Run("strips closing hashes", func(t *testing.T) {
		t.Parallel()

		headings := docmacros.ExtractHeadings("## Installation ##")

		assert.Len(t, headings, 1)
		assert.Equal(t, "Installation", headings[0].Title)
	})

	t.Run("returns nothing for markdown without headings", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docmacros.ExtractHeadings(""))
		assert.Empty(t, docmacros.ExtractHeadings("Just some text\n\nWith paragraphs."))
	})

	t.Run("requires a space after the hashes", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docmacros.ExtractHeadings("#hashtag"))
	})

	t.Run("ignores code blocks with hash symbols", func(t *testing.T) {
		t.Parallel()

		markdown := "# Real Heading\n\n```bash\n# This is a comment\necho hello\n```\n\n## Another Real Heading"

		headings := docmacros.ExtractHeadings(markdown)

		assert.Len(t, headings, 2)
		assert.Equal(t, "Real Heading", headings[0].Title)
		assert.Equal(t, "Another Real Heading", headings[1].Title)
	})
}

func TestFirstTitle(t *testing.T) {
	t.Parallel()

	t.Run("returns first level one heading", func(t *testing.T) {
		t.Parallel()

		markdown := "## Overview\n\n# Int24 Extensions\n\n# Later"

		assert.Equal(t, "Int24 Extensions", docmacros.FirstTitle(markdown))
	})

	t.Run("returns empty string without level one heading", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docmacros.FirstTitle("## Only a subheading"))
	})
}
