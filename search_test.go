package docprep_test

import (
	"testing"

	"github.com/fwojciec/docprep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchEntries() []docprep.IndexEntry {
	return []docprep.IndexEntry{
		{ChunkID: "1", Content: "React hooks let you use state.", Metadata: docprep.IndexMetadata{Category: docprep.CategoryGuides}},
		{ChunkID: "2", Content: "Hooks, hooks and more HOOKS.", Metadata: docprep.IndexMetadata{Category: docprep.CategoryConcepts}},
		{ChunkID: "3", Content: "Installation steps.", Metadata: docprep.IndexMetadata{Category: docprep.CategoryGettingStarted}},
		{ChunkID: "4", Content: "State management with hooks.", Metadata: docprep.IndexMetadata{Category: docprep.CategoryGuides}},
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	t.Run("ranks by term occurrences", func(t *testing.T) {
		t.Parallel()

		results := docprep.Search(searchEntries(), "hooks", docprep.SearchOptions{})

		require.Len(t, results, 3)
		assert.Equal(t, "2", results[0].Entry.ChunkID)
		assert.Equal(t, 1, results[0].Rank)
		assert.InDelta(t, 0.6, results[0].Similarity, 1e-9)
		// Equal scores keep index order.
		assert.Equal(t, "1", results[1].Entry.ChunkID)
		assert.Equal(t, "4", results[2].Entry.ChunkID)
		assert.Equal(t, 3, results[2].Rank)
	})

	t.Run("sums scores across terms", func(t *testing.T) {
		t.Parallel()

		results := docprep.Search(searchEntries(), "state hooks", docprep.SearchOptions{})

		require.Len(t, results, 3)
		assert.Equal(t, "2", results[0].Entry.ChunkID)
		assert.Equal(t, "1", results[1].Entry.ChunkID)
		assert.InDelta(t, 0.5, results[1].Similarity, 1e-9)
	})

	t.Run("caps similarity", func(t *testing.T) {
		t.Parallel()

		entries := []docprep.IndexEntry{{ChunkID: "x", Content: "go go go go go go go go go go go"}}

		results := docprep.Search(entries, "go", docprep.SearchOptions{})

		require.Len(t, results, 1)
		assert.Equal(t, 0.95, results[0].Similarity)
		assert.Equal(t, 11, results[0].Tokens)
	})

	t.Run("filters by category", func(t *testing.T) {
		t.Parallel()

		results := docprep.Search(searchEntries(), "hooks", docprep.SearchOptions{Category: docprep.CategoryGuides})

		require.Len(t, results, 2)
		assert.Equal(t, "1", results[0].Entry.ChunkID)
		assert.Equal(t, "4", results[1].Entry.ChunkID)
	})

	t.Run("applies limit", func(t *testing.T) {
		t.Parallel()

		results := docprep.Search(searchEntries(), "hooks", docprep.SearchOptions{Limit: 1})

		require.Len(t, results, 1)
		assert.Equal(t, "2", results[0].Entry.ChunkID)
	})

	t.Run("returns nothing for blank query", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docprep.Search(searchEntries(), "   ", docprep.SearchOptions{}))
	})
}
