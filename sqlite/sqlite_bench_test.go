package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docprep"
	"github.com/fwojciec/docprep/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkWriteIndex measures replacing an index of 100 documents with
// five chunks each.
func BenchmarkWriteIndex(b *testing.B) {
	const numDocs = 100

	docs := make([]*docprep.ProcessedDocument, numDocs)
	for i := range docs {
		doc := &docprep.ProcessedDocument{
			FilePath: fmt.Sprintf("cleaned/%04d_page.md", i),
			Title:    fmt.Sprintf("Page %d", i),
			Category: docprep.CategoryGuides,
		}
		for j := 0; j < 5; j++ {
			doc.Chunks = append(doc.Chunks, &docprep.Chunk{
				ID:       fmt.Sprintf("%04d-%d", i, j),
				Content:  fmt.Sprintf("Chunk %d of page %d. Lorem ipsum dolor sit amet.", j, i),
				Metadata: docprep.ChunkMetadata{Type: docprep.ChunkTypeText},
			})
		}
		docs[i] = doc
	}

	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	store := sqlite.NewIndexStore(db)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := store.WriteIndex(ctx, docs); err != nil {
			b.Fatal(err)
		}
	}
}
