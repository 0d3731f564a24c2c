package macros

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/fwojciec/docmacros"
)

// Output returned in place of a render that could not be produced.
const (
	NoNavMessage      = "Unable to render navigation tree."
	NoWordsMessage    = "_No words available._"
	missingVocabFmt   = "**Error: Vocabulary file '%s' not found.**"
	vocabRenderErrFmt = "**Error rendering vocabulary table: %s**"
)

// Env is the template environment pages render in.
//
// It reads the navigation tree captured into its State, so it must be
// constructed after the capture hook has run.
type Env struct {
	state        *docmacros.State
	pages        docmacros.PageResolver
	vocabularies docmacros.VocabularyStore
	docsDir      string
	logger       *slog.Logger
}

// NewEnv creates an Env. Pages are resolved on demand through pages, which
// may be nil when every page in the tree is already resolved.
func NewEnv(state *docmacros.State, pages docmacros.PageResolver, vocabularies docmacros.VocabularyStore, docsDir string, logger *slog.Logger) *Env {
	return &Env{
		state:        state,
		pages:        pages,
		vocabularies: vocabularies,
		docsDir:      docsDir,
		logger:       logger,
	}
}

// FuncMap returns the functions pages may call: global_nav and
// vocabulary_table.
func (e *Env) FuncMap(ctx context.Context) template.FuncMap {
	return template.FuncMap{
		"global_nav": func() (string, error) {
			return e.GlobalNav(ctx)
		},
		"vocabulary_table": func(category string) string {
			return e.VocabularyTable(ctx, category)
		},
	}
}

// GlobalNav renders the captured navigation tree as a nested Markdown list.
//
// A missing tree degrades to NoNavMessage. An unexpected item in the tree,
// or a page whose source cannot be read, is returned as an error so the
// calling template aborts.
func (e *Env) GlobalNav(ctx context.Context) (string, error) {
	e.logger.InfoContext(ctx, "rendering global navigation tree")

	items, ok := e.state.Nav()
	if !ok {
		e.logger.ErrorContext(ctx, "no navigation tree in state")
		return NoNavMessage, nil
	}

	lines, err := docmacros.RenderNav(ctx, e.pages, items)
	if err != nil {
		e.logger.ErrorContext(ctx, "render navigation tree", "err", err)
		return "", err
	}

	out := strings.Join(lines, "\n")
	e.logger.InfoContext(ctx, "rendered global navigation tree", "nav", out)
	return out, nil
}

// VocabularyTable renders a category's vocabulary as a Markdown table.
// It never fails: problems are logged and rendered as inline messages.
func (e *Env) VocabularyTable(ctx context.Context, category string) string {
	v, err := e.vocabularies.FindVocabulary(ctx, category)
	if docmacros.ErrorCode(err) == docmacros.ENOTFOUND {
		e.logger.ErrorContext(ctx, "vocabulary file not found",
			"path", docmacros.VocabularyPath(e.docsDir, category),
		)
		return fmt.Sprintf(missingVocabFmt, docmacros.VocabularyFilename(category))
	} else if err != nil {
		e.logger.ErrorContext(ctx, "render vocabulary table",
			"category", category,
			"err", err,
		)
		return fmt.Sprintf(vocabRenderErrFmt, err.Error())
	}

	if len(v.Rows) == 0 {
		return NoWordsMessage
	}
	return docmacros.FormatVocabularyTable(v)
}
