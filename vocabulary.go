package docmacros

import (
	"context"
	"path/filepath"
	"strings"
)

// Vocabulary is a glossary read from a CSV file named after its category.
type Vocabulary struct {
	Category string

	// Headers are the column names in file order.
	Headers []string

	// Rows map column names to cells. Cells missing from a record are absent.
	Rows []map[string]string
}

// VocabularyStore loads vocabularies by category.
type VocabularyStore interface {
	// FindVocabulary reads the vocabulary for a category.
	// Returns ENOTFOUND if the category has no file.
	FindVocabulary(ctx context.Context, category string) (*Vocabulary, error)
}

// VocabularyFilename returns the file name holding a category's vocabulary.
func VocabularyFilename(category string) string {
	return category + ".csv"
}

// VocabularyPath returns the location of a category's vocabulary file
// under the docs directory.
func VocabularyPath(docsDir, category string) string {
	return filepath.Join(docsDir, "assets", "vocabulary", VocabularyFilename(category))
}

// FormatVocabularyTable renders a vocabulary as a Markdown table: a header
// row, a separator row, then one row per record. Columns follow Headers;
// cells missing from a record render empty.
func FormatVocabularyTable(v *Vocabulary) string {
	lines := make([]string, 0, len(v.Rows)+2)
	lines = append(lines, tableRow(v.Headers))

	sep := make([]string, len(v.Headers))
	for i := range sep {
		sep[i] = "---"
	}
	lines = append(lines, tableRow(sep))

	cells := make([]string, len(v.Headers))
	for _, row := range v.Rows {
		for i, h := range v.Headers {
			cells[i] = row[h]
		}
		lines = append(lines, tableRow(cells))
	}

	return strings.Join(lines, "\n")
}

func tableRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}
