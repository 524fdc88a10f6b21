package gonum_test

import (
	"testing"

	"github.com/fwojciec/docprep"
	"github.com/fwojciec/docprep/gonum"
	"github.com/stretchr/testify/assert"
)

func newDoc(path, title, url string, category docprep.Category, tokens int, content string) *docprep.ProcessedDocument {
	return &docprep.ProcessedDocument{
		FilePath:    path,
		Title:       title,
		OriginalURL: url,
		Category:    category,
		Chunks: []*docprep.Chunk{{
			Content:  content,
			Tokens:   tokens,
			Metadata: docprep.ChunkMetadata{Type: docprep.ChunkTypeText},
		}},
	}
}

func TestNewReferenceGraph(t *testing.T) {
	t.Parallel()

	t.Run("links documents that mention a url or title", func(t *testing.T) {
		t.Parallel()

		docs := []*docprep.ProcessedDocument{
			newDoc("a.md", "Alpha", "https://docs.acme.io/alpha", docprep.CategoryGuides, 1, "See https://docs.acme.io/beta for more."),
			newDoc("b.md", "Beta", "https://docs.acme.io/beta", docprep.CategoryGuides, 1, "Mentions Gamma by title."),
			newDoc("c.md", "Gamma", "https://docs.acme.io/gamma", docprep.CategoryGuides, 1, "Self reference to Gamma only."),
		}

		g := gonum.NewReferenceGraph(docs)

		assert.True(t, g.References(0, 1))
		assert.True(t, g.References(1, 2))
		assert.False(t, g.References(1, 0))
		assert.False(t, g.References(2, 2))
		assert.Equal(t, []int{0}, g.Predecessors(1))
		assert.Empty(t, g.Predecessors(0))
	})

	t.Run("joins chunks with a space before matching", func(t *testing.T) {
		t.Parallel()

		split := newDoc("a.md", "Alpha", "", docprep.CategoryGuides, 1, "Read Getting")
		split.Chunks = append(split.Chunks, &docprep.Chunk{Content: "Started first.", Tokens: 1})
		glued := newDoc("b.md", "Beta", "", docprep.CategoryGuides, 1, "Ends with Getting")
		glued.Chunks = append(glued.Chunks, &docprep.Chunk{Content: "Started", Tokens: 1})
		docs := []*docprep.ProcessedDocument{
			split,
			newDoc("c.md", "Getting Started", "", docprep.CategoryGuides, 1, "Install."),
			glued,
			newDoc("d.md", "GettingStarted", "", docprep.CategoryGuides, 1, "Install."),
		}

		g := gonum.NewReferenceGraph(docs)

		assert.True(t, g.References(0, 1))
		assert.False(t, g.References(2, 3))
	})

	t.Run("ignores empty urls and titles", func(t *testing.T) {
		t.Parallel()

		docs := []*docprep.ProcessedDocument{
			newDoc("a.md", "Alpha", "", docprep.CategoryGuides, 1, "anything"),
			newDoc("b.md", "", "", docprep.CategoryGuides, 1, "Alpha"),
		}

		g := gonum.NewReferenceGraph(docs)

		assert.False(t, g.References(0, 1))
		assert.True(t, g.References(1, 0))
	})

	t.Run("matches across chunk boundaries", func(t *testing.T) {
		t.Parallel()

		a := newDoc("a.md", "A", "", docprep.CategoryGuides, 1, "see Bra")
		a.Chunks = append(a.Chunks, &docprep.Chunk{Content: "vo docs"})
		b := newDoc("b.md", "Bravo", "", docprep.CategoryGuides, 1, "")

		g := gonum.NewReferenceGraph([]*docprep.ProcessedDocument{a, b})

		assert.True(t, g.References(0, 1))
	})
}
