package main

import (
	"fmt"

	"github.com/fwojciec/docmacros"
	"github.com/fwojciec/docmacros/build"
	"github.com/fwojciec/docmacros/fs"
	"github.com/fwojciec/docmacros/goldmark"
	dmslog "github.com/fwojciec/docmacros/slog"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	nav, err := deps.Nav()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmacros.ErrorMessage(err))
		return err
	}

	ext := ".md"
	var html docmacros.HTMLRenderer
	if c.HTML {
		ext = ".html"
		html = goldmark.NewRenderer()
	}

	b := &build.Builder{
		Pages:        deps.Pages,
		Vocabularies: deps.Vocabularies,
		Store:        dmslog.NewLoggingPageStore(fs.NewFileStore(deps.Site.SiteDir, ext), deps.Logger),
		HTML:         html,
		Logger:       deps.Logger,
		DocsDir:      deps.Site.DocsDir,
		Concurrency:  c.Concurrency,
	}

	progress := func(event build.ProgressEvent) {
		if event.Type == build.ProgressStarted {
			fmt.Fprintf(deps.Stdout, "  Found %d pages\n", event.Total)
		}
	}

	result, err := b.Build(deps.Ctx, nav, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error building site: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Rendered %d pages (%s) to %s [%s]\n",
		result.Pages, build.FormatBytes(result.Bytes), deps.Site.SiteDir, result.Digest)
	return nil
}
