package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docmacros"
)

// Ensure LoggingVocabularyStore implements docmacros.VocabularyStore.
var _ docmacros.VocabularyStore = (*LoggingVocabularyStore)(nil)

// LoggingVocabularyStore wraps a VocabularyStore with logging.
type LoggingVocabularyStore struct {
	next   docmacros.VocabularyStore
	logger *slog.Logger
}

// NewLoggingVocabularyStore creates a new LoggingVocabularyStore.
func NewLoggingVocabularyStore(next docmacros.VocabularyStore, logger *slog.Logger) *LoggingVocabularyStore {
	return &LoggingVocabularyStore{next: next, logger: logger}
}

// FindVocabulary delegates to the wrapped store and logs the outcome.
// Failures are logged at debug level; callers decide how to report them.
func (s *LoggingVocabularyStore) FindVocabulary(ctx context.Context, category string) (*docmacros.Vocabulary, error) {
	begin := time.Now()
	v, err := s.next.FindVocabulary(ctx, category)
	if err != nil {
		s.logger.Debug("load vocabulary",
			"category", category,
			"err", err,
		)
		return nil, err
	}

	s.logger.Info("load vocabulary",
		"category", category,
		"columns", len(v.Headers),
		"rows", len(v.Rows),
		"duration", time.Since(begin),
	)
	return v, nil
}
