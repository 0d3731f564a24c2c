package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docmacros"
	"github.com/fwojciec/docmacros/fs"
	"github.com/fwojciec/docmacros/goquery"
	"github.com/fwojciec/docmacros/htmltomarkdown"
	dmslog "github.com/fwojciec/docmacros/slog"
	"github.com/fwojciec/docmacros/yaml"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Site configuration. Loaded from the --config path by Run.
	Site *docmacros.Site

	// Services for end-to-end testing.
	Pages        docmacros.PageResolver
	Vocabularies docmacros.VocabularyStore
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docmacros"),
		kong.Description("Render documentation sites with navigation and vocabulary macros."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docmacros --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose).With("build", uuid.NewString())

	m.Site, err = yaml.LoadSite(cli.Config)
	if err != nil {
		if docmacros.ErrorCode(err) == docmacros.ENOTFOUND {
			fmt.Fprintln(stderr, "Hint: Pass --config or set DOCMACROS_CONFIG to point at your site.yml")
		}
		return fmt.Errorf("failed to load site config: %s", docmacros.ErrorMessage(err))
	}

	if m.Pages == nil {
		m.Pages = fs.NewPageReader(
			goquery.NewExtractor(),
			htmltomarkdown.NewConverter(),
			yaml.NewFrontMatterParser(),
		)
	}
	if m.Vocabularies == nil {
		m.Vocabularies = fs.NewVocabularyStore(m.Site.DocsDir)
	}

	deps.Site = m.Site
	deps.Pages = dmslog.NewLoggingPageResolver(m.Pages, deps.Logger)
	deps.Vocabularies = dmslog.NewLoggingVocabularyStore(m.Vocabularies, deps.Logger)

	return kongCtx.Run(deps)
}

// newLogger writes text logs to w. Verbose output includes progress at
// info level; otherwise only warnings and errors are shown.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
