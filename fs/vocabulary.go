package fs

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/docmacros"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Ensure VocabularyStore implements docmacros.VocabularyStore at compile time.
var _ docmacros.VocabularyStore = (*VocabularyStore)(nil)

// VocabularyStore reads vocabularies from CSV files under
// <docsDir>/assets/vocabulary. Files are read on every call.
type VocabularyStore struct {
	docsDir string
}

// NewVocabularyStore creates a new VocabularyStore rooted at docsDir.
func NewVocabularyStore(docsDir string) *VocabularyStore {
	return &VocabularyStore{docsDir: docsDir}
}

// FindVocabulary parses <category>.csv. The first record is the header row.
// Short records leave trailing cells absent; extra cells are dropped; blank
// lines are skipped. Quotes are parsed leniently: a bare quote inside an
// unquoted cell is kept as text, and an unterminated quoted cell runs to the
// end of the file. Input must be UTF-8; a leading byte order mark is ignored.
func (s *VocabularyStore) FindVocabulary(ctx context.Context, category string) (*docmacros.Vocabulary, error) {
	path := docmacros.VocabularyPath(s.docsDir, category)

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, docmacros.Errorf(docmacros.ENOTFOUND, "vocabulary file not found: %s", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	return readVocabulary(ctx, category, f)
}

func readVocabulary(ctx context.Context, category string, r io.Reader) (*docmacros.Vocabulary, error) {
	// Validate before stripping the BOM so invalid bytes fail instead of
	// being replaced.
	decoded := transform.NewReader(r, transform.Chain(encoding.UTF8Validator, unicode.UTF8BOM.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	v := &docmacros.Vocabulary{Category: category}

	headers, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return v, nil
	} else if err != nil {
		return nil, err
	}
	v.Headers = headers

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}

		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			}
		}
		v.Rows = append(v.Rows, row)
	}

	return v, nil
}
