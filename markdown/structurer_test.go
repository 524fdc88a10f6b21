package markdown_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/docprep"
	"github.com/fwojciec/docprep/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return out
}

func newStructurer(t *testing.T, size, overlap int) *markdown.Structurer {
	t.Helper()
	s, err := markdown.NewStructurer(docprep.ChunkConfig{Size: size, Overlap: overlap})
	require.NoError(t, err)
	return s
}

func TestChunkID(t *testing.T) {
	t.Parallel()

	a := markdown.ChunkID("same content")
	b := markdown.ChunkID("same content")

	assert.Equal(t, a, b)
	assert.Len(t, a, 16)
	assert.NotEqual(t, a, markdown.ChunkID("other content"))
}

func TestNewStructurer(t *testing.T) {
	t.Parallel()

	_, err := markdown.NewStructurer(docprep.ChunkConfig{Size: 100, Overlap: 100})

	require.Error(t, err)
	assert.Equal(t, docprep.EINVALID, docprep.ErrorCode(err))
}

func TestStructurer_Structure(t *testing.T) {
	t.Parallel()

	t.Run("windows a long section with overlap", func(t *testing.T) {
		t.Parallel()

		s := newStructurer(t, 1000, 200)
		section := words("w", 2500)

		chunks := s.Structure("# Long\n"+strings.Join(section, " "), docprep.Metadata{})

		require.Len(t, chunks, 3)
		first := strings.Fields(chunks[0].Content)
		second := strings.Fields(chunks[1].Content)
		third := strings.Fields(chunks[2].Content)
		assert.Len(t, first, 1000)
		assert.Len(t, second, 1000)
		assert.Len(t, third, 900)
		assert.Equal(t, first[800:], second[:200])
		assert.Equal(t, second[800:], third[:200])
		assert.Equal(t, "w2499", third[len(third)-1])
		for _, c := range chunks {
			assert.Equal(t, len(strings.Fields(c.Content)), c.Tokens)
			assert.Equal(t, docprep.ChunkTypeText, c.Metadata.Type)
		}
	})

	t.Run("does not emit a trailing chunk of overlap words only", func(t *testing.T) {
		t.Parallel()

		s := newStructurer(t, 10, 3)

		chunks := s.Structure(strings.Join(words("w", 10), " "), docprep.Metadata{})

		require.Len(t, chunks, 1)
	})

	t.Run("covers all section text apart from overlap", func(t *testing.T) {
		t.Parallel()

		s := newStructurer(t, 7, 2)
		source := words("w", 30)

		chunks := s.Structure(strings.Join(source, " "), docprep.Metadata{})

		var rebuilt []string
		for i, c := range chunks {
			f := strings.Fields(c.Content)
			if i > 0 {
				f = f[2:]
			}
			rebuilt = append(rebuilt, f...)
		}
		assert.Equal(t, source, rebuilt)
	})

	t.Run("emits each code block verbatim as one chunk", func(t *testing.T) {
		t.Parallel()

		s := newStructurer(t, 5, 1)
		code := "```python\ndef f():\n    return  1\n\n\nprint(f())\n```"
		text := "# Example\nalpha beta gamma delta epsilon zeta eta\n" + code + "\ntheta iota"

		chunks := s.Structure(text, docprep.Metadata{})

		var codeChunks []*docprep.Chunk
		for _, c := range chunks {
			if c.Metadata.Type == docprep.ChunkTypeCode {
				codeChunks = append(codeChunks, c)
				continue
			}
			assert.NotContains(t, c.Content, "```")
		}
		require.Len(t, codeChunks, 1)
		assert.Equal(t, code, codeChunks[0].Content)
		assert.Equal(t, "Example", codeChunks[0].Metadata.SectionTitle)
		assert.Equal(t, 1, codeChunks[0].Metadata.SectionLevel)
	})

	t.Run("keeps large code blocks whole", func(t *testing.T) {
		t.Parallel()

		s := newStructurer(t, 5, 1)
		code := "```\n" + strings.Join(words("line", 50), "\n") + "\n```"

		chunks := s.Structure(code, docprep.Metadata{})

		require.Len(t, chunks, 1)
		assert.Equal(t, code, chunks[0].Content)
		assert.Equal(t, docprep.ChunkTypeCode, chunks[0].Metadata.Type)
	})

	t.Run("numbers positions across sections", func(t *testing.T) {
		t.Parallel()

		s := newStructurer(t, 3, 1)
		text := "intro words here and more\n# A\n```\ncode\n```\none two\n## B\nthree four five six"

		chunks := s.Structure(text, docprep.Metadata{})

		require.NotEmpty(t, chunks)
		for i, c := range chunks {
			assert.Equal(t, i, c.Position)
		}
		assert.Equal(t, "Introduction", chunks[0].Metadata.SectionTitle)
		assert.Equal(t, 0, chunks[0].Metadata.SectionLevel)
	})

	t.Run("yields nothing for whitespace-only sections", func(t *testing.T) {
		t.Parallel()

		s := newStructurer(t, 10, 2)

		chunks := s.Structure("# Empty\n   \n\n# Also empty\n\t", docprep.Metadata{})

		assert.Empty(t, chunks)
	})

	t.Run("merges document metadata into every chunk", func(t *testing.T) {
		t.Parallel()

		s := newStructurer(t, 2, 0)
		meta := docprep.Metadata{
			docprep.MetaURL:       "https://docs.acme.io/start",
			docprep.MetaTitle:     "Start",
			docprep.MetaScrapedAt: "2024-05-01T10:00:00Z",
		}

		chunks := s.Structure("# Start\na b c d", meta)

		require.Len(t, chunks, 2)
		for _, c := range chunks {
			assert.Equal(t, "https://docs.acme.io/start", c.Metadata.SourceURL)
			assert.Equal(t, "Start", c.Metadata.DocTitle)
			assert.Equal(t, "2024-05-01T10:00:00Z", c.Metadata.ScrapedAt)
			assert.Equal(t, markdown.ChunkID(c.Content), c.ID)
		}
	})

	t.Run("produces one chunk for a short document", func(t *testing.T) {
		t.Parallel()

		s := newStructurer(t, 1000, 200)

		chunks := s.Structure("# Intro\nShort", docprep.Metadata{})

		require.Len(t, chunks, 1)
		assert.Equal(t, "Short", chunks[0].Content)
		assert.Equal(t, "Intro", chunks[0].Metadata.SectionTitle)
		assert.Equal(t, 1, chunks[0].Tokens)
	})
}
