package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/docprep"
)

// Ensure Source implements docprep.Source at compile time.
var _ docprep.Source = (*Source)(nil)

// Source reads input documents from a directory tree.
type Source struct {
	root string
}

// NewSource creates a new Source rooted at dir.
func NewSource(dir string) *Source {
	return &Source{root: dir}
}

// Files lists matching files. Returns ENOTFOUND if the root is missing and
// EINVALID if it is not a directory.
func (s *Source) Files(ctx context.Context, recursive bool, extensions []string) ([]string, error) {
	info, err := os.Stat(s.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, docprep.Errorf(docprep.ENOTFOUND, "input directory %q not found", s.root)
	} else if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, docprep.Errorf(docprep.EINVALID, "input %q is not a directory", s.root)
	}

	var files []string
	err = filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p != s.root && !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), "_") || !hasExtension(d.Name(), extensions) {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}

// ReadFile returns the contents of rel.
func (s *Source) ReadFile(ctx context.Context, rel string) (string, error) {
	data, err := os.ReadFile(s.Path(rel))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Path joins rel to the root.
func (s *Source) Path(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

func hasExtension(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
