package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fwojciec/docmacros"
	"github.com/fwojciec/docmacros/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Site Output
// The store uses a temp directory so a failed build never clobbers the site

func TestFileStore_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store targeting a directory
	base := t.TempDir()
	store := fs.NewFileStore(filepath.Join(base, "site"), ".html")

	// When I save a page
	err := store.Save(context.Background(), &docmacros.RenderedPage{
		URL:     "guide/install/",
		Content: "<h1>Install</h1>",
	})

	// Then no error occurs
	require.NoError(t, err)

	// And the file exists in the temp directory (not final)
	tempPath := filepath.Join(base, "site.tmp", "guide", "install", "index.html")
	_, err = os.Stat(tempPath)
	require.NoError(t, err, "file should exist in temp directory")

	// And final directory does not exist yet
	_, err = os.Stat(filepath.Join(base, "site"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestFileStore_CommitReplacesFinalDirectory(t *testing.T) {
	t.Parallel()

	// Given a previous build output
	base := t.TempDir()
	site := filepath.Join(base, "site")
	require.NoError(t, os.MkdirAll(site, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(site, "stale.html"), []byte("old"), 0644))

	// And a store with a saved homepage
	store := fs.NewFileStore(site, ".html")
	err := store.Save(context.Background(), &docmacros.RenderedPage{URL: "", Content: "home"})
	require.NoError(t, err)

	// When I commit
	err = store.Commit()

	// Then no error occurs
	require.NoError(t, err)

	// And the final directory holds only the new content
	content, err := os.ReadFile(filepath.Join(site, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "home", string(content))

	_, err = os.Stat(filepath.Join(site, "stale.html"))
	assert.True(t, os.IsNotExist(err), "stale output should be gone")

	// And temp directory is gone
	_, err = os.Stat(filepath.Join(base, "site.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
}

func TestFileStore_CommitWithoutPages(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(filepath.Join(base, "site"), ".md")

	require.NoError(t, store.Commit())

	info, err := os.Stat(filepath.Join(base, "site"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStore_AbortKeepsPreviousOutput(t *testing.T) {
	t.Parallel()

	// Given a previous build output and pending pages
	base := t.TempDir()
	site := filepath.Join(base, "site")
	require.NoError(t, os.MkdirAll(site, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(site, "index.html"), []byte("old"), 0644))

	store := fs.NewFileStore(site, ".html")
	err := store.Save(context.Background(), &docmacros.RenderedPage{URL: "", Content: "new"})
	require.NoError(t, err)

	// When I abort
	err = store.Abort()

	// Then no error occurs
	require.NoError(t, err)

	// And temp directory is cleaned up
	_, err = os.Stat(filepath.Join(base, "site.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after abort")

	// And the previous output is untouched
	content, err := os.ReadFile(filepath.Join(site, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))
}

func TestFileStore_ConcurrentSaves(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(filepath.Join(base, "site"), ".md")
	urls := []string{"a/", "a/b/", "a/b/c/", "d/", "d/e/", "f/"}

	var wg sync.WaitGroup
	for _, url := range urls {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Save(context.Background(), &docmacros.RenderedPage{URL: url, Content: url}))
		}()
	}
	wg.Wait()
	require.NoError(t, store.Commit())

	for _, url := range urls {
		content, err := os.ReadFile(filepath.Join(base, "site", filepath.FromSlash(fs.DestPath(url, ".md"))))
		require.NoError(t, err)
		assert.Equal(t, url, string(content))
	}
}

func TestFileStore_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	// Given a store
	base := t.TempDir()
	store := fs.NewFileStore(filepath.Join(base, "site"), ".html")

	// When I try to save a page escaping the site directory
	err := store.Save(context.Background(), &docmacros.RenderedPage{
		URL:     "../../etc/passwd/",
		Content: "bad content",
	})

	// Then an error is returned
	require.Error(t, err, "path traversal should be rejected")
	assert.Equal(t, docmacros.EINVALID, docmacros.ErrorCode(err))
	assert.Contains(t, err.Error(), "path traversal")
}

func TestFileStore_DiscardsLeftoverTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a temp directory left behind by an interrupted run
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "site.tmp", "removed"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "site.tmp", "removed", "index.md"), []byte("stale"), 0644))
	store := fs.NewFileStore(filepath.Join(base, "site"), ".md")

	// When I save a page and commit
	require.NoError(t, store.Save(context.Background(), &docmacros.RenderedPage{URL: "about/", Content: "fresh"}))
	require.NoError(t, store.Commit())

	// Then only pages from this run are published
	content, err := os.ReadFile(filepath.Join(base, "site", "about", "index.md"))
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(content))
	assert.NoDirExists(t, filepath.Join(base, "site", "removed"))
}

func TestFileStore_CommitWithoutSavesDiscardsLeftoverTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a temp directory left behind by an interrupted run
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "site.tmp"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "site.tmp", "stale.md"), []byte("stale"), 0644))
	store := fs.NewFileStore(filepath.Join(base, "site"), ".md")

	// When I commit without saving anything
	require.NoError(t, store.Commit())

	// Then the output directory is empty
	entries, err := os.ReadDir(filepath.Join(base, "site"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
