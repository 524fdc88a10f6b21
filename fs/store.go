// Package fs provides file-based input and output for the pipeline.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/docprep"
)

// Output layout below the output directory.
const (
	CleanedDir  = "cleaned"
	ChunksDir   = "chunks"
	SummaryFile = "processing_summary.json"
	IndexFile   = "vector_db_index.json"
)

// Ensure OutputStore implements docprep.OutputStore at compile time.
var _ docprep.OutputStore = (*OutputStore)(nil)

// OutputStore implements docprep.OutputStore with atomic update semantics.
// Files are saved to a temporary sibling directory, then moved into place
// on Commit. Only the pipeline's own artifacts are replaced; anything else in
// the output directory is left alone.
type OutputStore struct {
	dir       string
	committed bool
}

// artifacts lists the entries of the output directory owned by the store.
var artifacts = []string{CleanedDir, ChunksDir, SummaryFile, IndexFile}

// NewOutputStore creates a new OutputStore for dir and clears any staging
// directory left by an earlier run.
func NewOutputStore(dir string) (*OutputStore, error) {
	s := &OutputStore{dir: filepath.Clean(dir)}
	if err := os.RemoveAll(s.tempDir()); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return nil, err
	}
	return s, nil
}

// CheckSeparate returns EINVALID if the input and output directories are the
// same or one contains the other. Commit replaces entries of the output
// directory, and a recursive listing would pick up earlier output.
func CheckSeparate(input, output string) error {
	in, err := resolve(input)
	if err != nil {
		return err
	}
	out, err := resolve(output)
	if err != nil {
		return err
	}
	if within(in, out) {
		return docprep.Errorf(docprep.EINVALID, "input directory %q must not be inside output directory %q", input, output)
	}
	if within(out, in) {
		return docprep.Errorf(docprep.EINVALID, "output directory %q must not be inside input directory %q", output, input)
	}
	return nil
}

// resolve returns an absolute path with symlinks evaluated for the longest
// existing prefix.
func resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	var rest []string
	for dir := abs; ; {
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			return filepath.Join(append([]string{resolved}, rest...)...), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		rest = append([]string{filepath.Base(dir)}, rest...)
		dir = parent
	}
}

func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || filepath.IsLocal(rel)
}

func (s *OutputStore) tempDir() string {
	return s.dir + ".tmp"
}

// SaveDocument writes the cleaned markdown and one JSON file per chunk.
func (s *OutputStore) SaveDocument(ctx context.Context, name docprep.OutputName, doc *docprep.ProcessedDocument) (string, error) {
	if name.Stem == "" {
		return "", docprep.Errorf(docprep.EINVALID, "output name required")
	}
	if !filepath.IsLocal(filepath.Join(filepath.FromSlash(name.Dir), name.Stem)) {
		return "", docprep.Errorf(docprep.EINVALID, "path traversal in output name %q", name.Dir+"/"+name.Stem)
	}

	cleaned := filepath.Join(CleanedDir, filepath.FromSlash(name.Dir), name.Stem+".md")
	if err := s.writeFile(cleaned, []byte(docprep.FormatDocument(doc))); err != nil {
		return "", err
	}

	chunkDir := filepath.Join(ChunksDir, filepath.FromSlash(name.Dir), name.Stem)
	if err := os.MkdirAll(filepath.Join(s.tempDir(), chunkDir), 0755); err != nil {
		return "", err
	}
	for i, c := range doc.Chunks {
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return "", err
		}
		if err := s.writeFile(filepath.Join(chunkDir, fmt.Sprintf("chunk_%03d.json", i)), data); err != nil {
			return "", err
		}
	}

	return filepath.Join(s.dir, cleaned), nil
}

// SaveSummary writes processing_summary.json.
func (s *OutputStore) SaveSummary(ctx context.Context, summary *docprep.Summary) error {
	return s.writeJSON(SummaryFile, summary)
}

// SaveIndex writes vector_db_index.json.
func (s *OutputStore) SaveIndex(ctx context.Context, entries []docprep.IndexEntry) error {
	if entries == nil {
		entries = []docprep.IndexEntry{}
	}
	return s.writeJSON(IndexFile, entries)
}

// Commit moves the staged artifacts into the output directory, replacing
// those of an earlier run. Other files in the output directory are kept.
func (s *OutputStore) Commit() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	for _, name := range artifacts {
		final := filepath.Join(s.dir, name)
		if err := os.RemoveAll(final); err != nil {
			return err
		}
		staged := filepath.Join(s.tempDir(), name)
		if _, err := os.Lstat(staged); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := os.Rename(staged, final); err != nil {
			return err
		}
	}

	if err := os.RemoveAll(s.tempDir()); err != nil {
		return err
	}
	s.committed = true
	return nil
}

// Abort discards staged files. It is a no-op after Commit.
func (s *OutputStore) Abort() error {
	if s.committed {
		return nil
	}
	return os.RemoveAll(s.tempDir())
}

func (s *OutputStore) writeJSON(rel string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return s.writeFile(rel, data)
}

func (s *OutputStore) writeFile(rel string, data []byte) error {
	fullPath := filepath.Join(s.tempDir(), rel)

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}
