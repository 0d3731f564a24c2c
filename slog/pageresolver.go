// Package slog decorates domain services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docmacros"
)

// Ensure LoggingPageResolver implements docmacros.PageResolver.
var _ docmacros.PageResolver = (*LoggingPageResolver)(nil)

// LoggingPageResolver wraps a PageResolver with logging.
type LoggingPageResolver struct {
	next   docmacros.PageResolver
	logger *slog.Logger
}

// NewLoggingPageResolver creates a new LoggingPageResolver.
func NewLoggingPageResolver(next docmacros.PageResolver, logger *slog.Logger) *LoggingPageResolver {
	return &LoggingPageResolver{next: next, logger: logger}
}

// ResolvePage delegates to the wrapped resolver and logs the outcome.
// Pages that are already resolved pass through silently.
func (r *LoggingPageResolver) ResolvePage(ctx context.Context, page *docmacros.Page) (err error) {
	if page.Resolved() {
		return r.next.ResolvePage(ctx, page)
	}

	defer func(begin time.Time) {
		if err != nil {
			r.logger.Error("resolve page",
				"src", page.File.SrcURI,
				"err", err,
			)
			return
		}
		r.logger.Info("resolve page",
			"src", page.File.SrcURI,
			"title", page.Title,
			"bytes", len(page.Content),
			"duration", time.Since(begin),
		)
	}(time.Now())

	return r.next.ResolvePage(ctx, page)
}
