// Package build renders a documentation site: it resolves the navigation
// tree, hands it to the macros capture hook and renders every page as a
// template with the macros available.
package build

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"text/template"

	"github.com/fwojciec/docmacros"
	"github.com/fwojciec/docmacros/macros"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Builder.Concurrency is not positive.
const DefaultConcurrency = 10

// Builder renders all pages of a navigation tree.
type Builder struct {
	Pages        docmacros.PageResolver
	Vocabularies docmacros.VocabularyStore
	Store        docmacros.PageStore

	// HTML, when set, converts rendered Markdown to HTML before saving.
	HTML docmacros.HTMLRenderer

	Logger      *slog.Logger
	DocsDir     string
	Concurrency int
}

// Result holds the outcome of a build.
type Result struct {
	Pages int
	Bytes int

	// Digest identifies the rendered output; unchanged sources and config
	// produce the same digest.
	Digest string
}

// ProgressEvent reports progress during a build.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFinished
)

// ProgressFunc is a callback for reporting build progress.
// Completed events arrive from concurrent renders.
type ProgressFunc func(event ProgressEvent)

// Build renders every page in nav and commits the output.
//
// Every page in the tree is resolved before the tree is captured, so
// concurrent page renders only read it. Entries sharing an output URL are
// rendered once. Any failure aborts the store and is returned; no partial
// site is committed.
func (b *Builder) Build(ctx context.Context, nav []docmacros.NavItem, progress ProgressFunc) (_ *Result, err error) {
	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	defer func() {
		if err == nil {
			return
		}
		if abortErr := b.Store.Abort(); abortErr != nil {
			logger.ErrorContext(ctx, "abort site", "err", abortErr)
		}
	}()

	all := docmacros.CollectPages(nav)
	if err := b.resolve(ctx, distinctPages(all)); err != nil {
		return nil, err
	}
	pages := uniquePages(all)

	state := docmacros.NewState()
	macros.NewCapture(state, logger).OnNav(ctx, nav)
	env := macros.NewEnv(state, b.Pages, b.Vocabularies, b.DocsDir, logger)

	total := len(pages)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	urls := make([]string, total)
	contents := make([]string, total)

	var completed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency())
	for i, page := range pages {
		urls[i] = page.URL
		g.Go(func() error {
			content, err := b.render(gctx, env, page)
			if err != nil {
				return err
			}
			contents[i] = content
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Add(1)),
					Total:     total,
					URL:       page.URL,
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := b.Store.Commit(); err != nil {
		return nil, fmt.Errorf("commit site: %w", err)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	var written int
	for _, c := range contents {
		written += len(c)
	}
	return &Result{
		Pages:  total,
		Bytes:  written,
		Digest: siteDigest(urls, contents),
	}, nil
}

func (b *Builder) concurrency() int {
	if b.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return b.Concurrency
}

// resolve reads every page source. Each page is touched by one goroutine only.
func (b *Builder) resolve(ctx context.Context, pages []*docmacros.Page) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency())
	for _, page := range pages {
		g.Go(func() error {
			return b.Pages.ResolvePage(gctx, page)
		})
	}
	return g.Wait()
}

// render executes a page's content as a template and saves the result.
// It returns the saved content.
func (b *Builder) render(ctx context.Context, env *macros.Env, page *docmacros.Page) (string, error) {
	src := page.File.SrcURI

	tmpl, err := template.New(src).Funcs(env.FuncMap(ctx)).Parse(page.Content)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", src, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("render %s: %w", src, err)
	}

	content := buf.String()
	if b.HTML != nil {
		if content, err = b.HTML.RenderHTML(content); err != nil {
			return "", fmt.Errorf("render %s: %w", src, err)
		}
	}

	if err := b.Store.Save(ctx, &docmacros.RenderedPage{URL: page.URL, Content: content}); err != nil {
		return "", fmt.Errorf("save %s: %w", src, err)
	}
	return content, nil
}

// distinctPages drops repeated pointers to the same page, keeping the first.
func distinctPages(pages []*docmacros.Page) []*docmacros.Page {
	seen := make(map[*docmacros.Page]bool, len(pages))
	out := pages[:0:0]
	for _, p := range pages {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// uniquePages drops repeated entries for the same output URL, keeping the first.
func uniquePages(pages []*docmacros.Page) []*docmacros.Page {
	seen := make(map[string]bool, len(pages))
	out := pages[:0:0]
	for _, p := range pages {
		if seen[p.URL] {
			continue
		}
		seen[p.URL] = true
		out = append(out, p)
	}
	return out
}
