package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docmacros"
	"github.com/fwojciec/docmacros/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Logger       *slog.Logger
	Site         *docmacros.Site
	Pages        docmacros.PageResolver
	Vocabularies docmacros.VocabularyStore
}

// Nav returns the site's navigation tree: the configured nav when present,
// otherwise the tree discovered from the docs directory.
func (d *Dependencies) Nav() ([]docmacros.NavItem, error) {
	if len(d.Site.Nav) > 0 {
		return d.Site.NavTree(), nil
	}
	return fs.DiscoverNav(d.Site.DocsDir, d.Site.UseDirectoryURLs)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"C" default:"site.yml" env:"DOCMACROS_CONFIG" help:"Path to the site config"`
	Verbose bool   `short:"v" help:"Log progress to stderr"`

	Build BuildCmd `cmd:"" help:"Render every page of the site"`
	Nav   NavCmd   `cmd:"" help:"Print the global navigation as Markdown"`
	Vocab VocabCmd `cmd:"" help:"Print a vocabulary table as Markdown"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	HTML        bool `name:"html" help:"Write sanitized HTML instead of Markdown"`
	Concurrency int  `short:"c" default:"10" help:"Concurrent page render limit"`
}

// NavCmd is the "nav" subcommand.
type NavCmd struct{}

// VocabCmd is the "vocab" subcommand.
type VocabCmd struct {
	Category string `arg:"" help:"Vocabulary category (file name without .csv)"`
}
