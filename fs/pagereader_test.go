package fs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docmacros"
	"github.com/fwojciec/docmacros/fs"
	"github.com/fwojciec/docmacros/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noFrontMatter returns sources unchanged.
var noFrontMatter = &mock.FrontMatterParser{
	ParseFrontMatterFn: func(src string) (*docmacros.FrontMatter, string, error) {
		return nil, src, nil
	},
}

func TestPageReader_ResolvePage(t *testing.T) {
	t.Parallel()

	t.Run("takes title from first heading", func(t *testing.T) {
		t.Parallel()

		docs := writeFiles(t, map[string]string{"guide/install.md": "Intro\n\n# Installing\n\nRun it."})
		reader := fs.NewPageReader(nil, nil, noFrontMatter)
		page := docmacros.NewPage(docs, "guide/install.md", "", true)

		err := reader.ResolvePage(context.Background(), page)

		require.NoError(t, err)
		assert.True(t, page.Resolved())
		assert.Equal(t, "Installing", page.Title)
		assert.Equal(t, "Intro\n\n# Installing\n\nRun it.", page.Content)
	})

	t.Run("prefers front matter title and strips it", func(t *testing.T) {
		t.Parallel()

		docs := writeFiles(t, map[string]string{"about.md": "---\ntitle: About Us\n---\n# Heading"})
		parser := &mock.FrontMatterParser{
			ParseFrontMatterFn: func(src string) (*docmacros.FrontMatter, string, error) {
				return &docmacros.FrontMatter{Title: "About Us"}, "# Heading", nil
			},
		}
		reader := fs.NewPageReader(nil, nil, parser)
		page := docmacros.NewPage(docs, "about.md", "", true)

		err := reader.ResolvePage(context.Background(), page)

		require.NoError(t, err)
		assert.Equal(t, "About Us", page.Title)
		assert.Equal(t, "# Heading", page.Content)
	})

	t.Run("keeps explicit nav title", func(t *testing.T) {
		t.Parallel()

		docs := writeFiles(t, map[string]string{"about.md": "# Heading"})
		reader := fs.NewPageReader(nil, nil, noFrontMatter)
		page := docmacros.NewPage(docs, "about.md", "Who We Are", true)

		require.NoError(t, reader.ResolvePage(context.Background(), page))

		assert.Equal(t, "Who We Are", page.Title)
	})

	t.Run("falls back to file name", func(t *testing.T) {
		t.Parallel()

		docs := writeFiles(t, map[string]string{"release-notes.md": "No headings here."})
		reader := fs.NewPageReader(nil, nil, noFrontMatter)
		page := docmacros.NewPage(docs, "release-notes.md", "", true)

		require.NoError(t, reader.ResolvePage(context.Background(), page))

		assert.Equal(t, "Release notes", page.Title)
	})

	t.Run("extracts and converts HTML sources", func(t *testing.T) {
		t.Parallel()

		docs := writeFiles(t, map[string]string{"legacy.html": "<html><title>Legacy</title><main><p>Old</p></main></html>"})
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*docmacros.ExtractResult, error) {
				return &docmacros.ExtractResult{Title: "Legacy", ContentHTML: "<p>Old</p>"}, nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				assert.Equal(t, "<p>Old</p>", html)
				return "Old", nil
			},
		}
		reader := fs.NewPageReader(extractor, converter, noFrontMatter)
		page := docmacros.NewPage(docs, "legacy.html", "", true)

		require.NoError(t, reader.ResolvePage(context.Background(), page))

		assert.Equal(t, "Legacy", page.Title)
		assert.Equal(t, "Old", page.Content)
	})

	t.Run("skips conversion for empty HTML content", func(t *testing.T) {
		t.Parallel()

		docs := writeFiles(t, map[string]string{"blank.html": "<html></html>"})
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*docmacros.ExtractResult, error) {
				return &docmacros.ExtractResult{}, nil
			},
		}
		reader := fs.NewPageReader(extractor, nil, noFrontMatter)
		page := docmacros.NewPage(docs, "blank.html", "", true)

		require.NoError(t, reader.ResolvePage(context.Background(), page))

		assert.Equal(t, "Blank", page.Title)
		assert.Empty(t, page.Content)
	})

	t.Run("returns ENOTFOUND for missing source", func(t *testing.T) {
		t.Parallel()

		reader := fs.NewPageReader(nil, nil, noFrontMatter)
		page := docmacros.NewPage(t.TempDir(), "missing.md", "", true)

		err := reader.ResolvePage(context.Background(), page)

		assert.Equal(t, docmacros.ENOTFOUND, docmacros.ErrorCode(err))
		assert.False(t, page.Resolved())
	})

	t.Run("wraps parser errors with the source path", func(t *testing.T) {
		t.Parallel()

		docs := writeFiles(t, map[string]string{"bad.md": "---\n: [\n---\n"})
		parser := &mock.FrontMatterParser{
			ParseFrontMatterFn: func(src string) (*docmacros.FrontMatter, string, error) {
				return nil, "", errors.New("yaml: did not find expected key")
			},
		}
		reader := fs.NewPageReader(nil, nil, parser)
		page := docmacros.NewPage(docs, "bad.md", "", true)

		err := reader.ResolvePage(context.Background(), page)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "read bad.md")
	})

	t.Run("leaves resolved pages untouched", func(t *testing.T) {
		t.Parallel()

		reader := fs.NewPageReader(nil, nil, noFrontMatter)
		page := docmacros.NewPage(t.TempDir(), "missing.md", "", true)
		page.Resolve("Done", "content")

		require.NoError(t, reader.ResolvePage(context.Background(), page))
		assert.Equal(t, "Done", page.Title)
	})
}
