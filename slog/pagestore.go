package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/docmacros"
)

// Ensure LoggingPageStore implements docmacros.PageStore.
var _ docmacros.PageStore = (*LoggingPageStore)(nil)

// LoggingPageStore wraps a PageStore with logging.
type LoggingPageStore struct {
	next   docmacros.PageStore
	logger *slog.Logger
}

// NewLoggingPageStore creates a new LoggingPageStore.
func NewLoggingPageStore(next docmacros.PageStore, logger *slog.Logger) *LoggingPageStore {
	return &LoggingPageStore{next: next, logger: logger}
}

func (s *LoggingPageStore) Save(ctx context.Context, page *docmacros.RenderedPage) error {
	if err := s.next.Save(ctx, page); err != nil {
		s.logger.Error("save page", "url", page.URL, "err", err)
		return err
	}
	s.logger.Info("save page", "url", page.URL, "bytes", len(page.Content))
	return nil
}

func (s *LoggingPageStore) Commit() error {
	if err := s.next.Commit(); err != nil {
		s.logger.Error("commit site", "err", err)
		return err
	}
	s.logger.Info("commit site")
	return nil
}

func (s *LoggingPageStore) Abort() error {
	s.logger.Warn("abort site")
	return s.next.Abort()
}
