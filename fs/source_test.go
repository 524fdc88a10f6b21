package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docprep"
	"github.com/fwojciec/docprep/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestSource_Files(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"b.md":              "b",
		"a.md":              "a",
		"_summary.md":       "skip",
		"notes.txt":         "skip",
		"page.HTML":         "<p>x</p>",
		"guides/setup.md":   "setup",
		"guides/_draft.md":  "skip",
		"_private/inner.md": "inner",
	})
	src := fs.NewSource(root)

	t.Run("lists top-level files", func(t *testing.T) {
		t.Parallel()

		files, err := src.Files(context.Background(), false, []string{".md"})

		require.NoError(t, err)
		assert.Equal(t, []string{"a.md", "b.md"}, files)
	})

	t.Run("recurses in lexical order", func(t *testing.T) {
		t.Parallel()

		files, err := src.Files(context.Background(), true, []string{".md"})

		require.NoError(t, err)
		assert.Equal(t, []string{"_private/inner.md", "a.md", "b.md", "guides/setup.md"}, files)
	})

	t.Run("matches extensions case-insensitively", func(t *testing.T) {
		t.Parallel()

		files, err := src.Files(context.Background(), false, []string{".md", ".html"})

		require.NoError(t, err)
		assert.Equal(t, []string{"a.md", "b.md", "page.HTML"}, files)
	})
}

func TestSource_FilesErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewSource(filepath.Join(t.TempDir(), "missing")).Files(context.Background(), true, []string{".md"})

		assert.Equal(t, docprep.ENOTFOUND, docprep.ErrorCode(err))
	})

	t.Run("not a directory", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFiles(t, root, map[string]string{"file.md": "x"})

		_, err := fs.NewSource(filepath.Join(root, "file.md")).Files(context.Background(), true, []string{".md"})

		assert.Equal(t, docprep.EINVALID, docprep.ErrorCode(err))
	})
}

func TestSource_ReadFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{"guides/setup.md": "# Setup"})
	src := fs.NewSource(root)

	content, err := src.ReadFile(context.Background(), "guides/setup.md")

	require.NoError(t, err)
	assert.Equal(t, "# Setup", content)
	assert.Equal(t, filepath.Join(root, "guides", "setup.md"), src.Path("guides/setup.md"))
}
