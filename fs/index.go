package fs

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/docprep"
)

// Ensure IndexReader implements docprep.IndexReader at compile time.
var _ docprep.IndexReader = (*IndexReader)(nil)

// IndexReader loads vector_db_index.json from an output directory.
type IndexReader struct {
	dir string
}

// NewIndexReader creates a new IndexReader for the output directory dir.
func NewIndexReader(dir string) *IndexReader {
	return &IndexReader{dir: dir}
}

// ReadIndex returns the index entries in file order.
func (r *IndexReader) ReadIndex(ctx context.Context) ([]docprep.IndexEntry, error) {
	path := filepath.Join(r.dir, IndexFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, docprep.Errorf(docprep.ENOTFOUND, "no index at %s", path)
	} else if err != nil {
		return nil, err
	}

	var entries []docprep.IndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, docprep.Errorf(docprep.EINVALID, "decode %s: %v", path, err)
	}
	return entries, nil
}
