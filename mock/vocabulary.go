package mock

import (
	"context"

	"github.com/fwojciec/docmacros"
)

var _ docmacros.VocabularyStore = (*VocabularyStore)(nil)

// VocabularyStore is a mock implementation of docmacros.VocabularyStore.
type VocabularyStore struct {
	FindVocabularyFn func(ctx context.Context, category string) (*docmacros.Vocabulary, error)
}

func (s *VocabularyStore) FindVocabulary(ctx context.Context, category string) (*docmacros.Vocabulary, error) {
	return s.FindVocabularyFn(ctx, category)
}
