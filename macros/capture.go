// Package macros provides the site build extension: a hook that captures the
// finished navigation tree and the template functions that render it and
// vocabulary tables into pages.
package macros

import (
	"context"
	"log/slog"

	"github.com/fwojciec/docmacros"
)

// Capture records the navigation tree when the build finalizes it.
type Capture struct {
	state  *docmacros.State
	logger *slog.Logger
}

// NewCapture creates a Capture writing into state.
func NewCapture(state *docmacros.State, logger *slog.Logger) *Capture {
	return &Capture{state: state, logger: logger}
}

// OnNav stores the top-level items of the tree under docmacros.NavTreeKey.
// A nil or empty tree is stored as given and later treated as absent.
func (c *Capture) OnNav(ctx context.Context, items []docmacros.NavItem) {
	c.state.SetNav(items)
	c.logger.InfoContext(ctx, "captured navigation tree", "items", len(items))
}
