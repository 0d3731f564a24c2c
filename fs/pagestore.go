package fs

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fwojciec/docmacros"
)

// Ensure FileStore implements docmacros.PageStore at compile time.
var _ docmacros.PageStore = (*FileStore)(nil)

// FileStore implements docmacros.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	dir string
	ext string

	// clean removes a temp directory left behind by an interrupted run
	// before the first write.
	clean    sync.Once
	cleanErr error
}

// NewFileStore creates a new FileStore writing to dir.
// Files are saved to dir.tmp and moved to dir on Commit. ext is the
// extension of rendered files (".html" or ".md").
func NewFileStore(dir, ext string) *FileStore {
	return &FileStore{
		dir: filepath.Clean(dir),
		ext: ext,
	}
}

func (s *FileStore) tempDir() string {
	return s.dir + ".tmp"
}

func (s *FileStore) prepare() error {
	s.clean.Do(func() {
		s.cleanErr = os.RemoveAll(s.tempDir())
	})
	return s.cleanErr
}

// Save writes a rendered page below the temporary directory.
// Safe for concurrent use with distinct pages.
func (s *FileStore) Save(ctx context.Context, page *docmacros.RenderedPage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.prepare(); err != nil {
		return err
	}

	rel := path.Clean(DestPath(page.URL, s.ext))
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return docmacros.Errorf(docmacros.EINVALID, "page %q: path traversal outside site directory", page.URL)
	}
	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(rel))

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(page.Content), 0644)
}

// Commit replaces the output directory with the saved pages.
func (s *FileStore) Commit() error {
	if err := s.prepare(); err != nil {
		return err
	}

	// Nothing saved: still produce an (empty) output directory
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.dir); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(s.tempDir(), s.dir)
}

// Abort discards saved pages, leaving any previous output untouched.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
