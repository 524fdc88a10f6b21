package markdown

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docprep"
)

// Ensure Structurer implements docprep.Structurer at compile time.
var _ docprep.Structurer = (*Structurer)(nil)

// ChunkID returns the content hash used as a chunk identifier.
func ChunkID(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// Structurer splits cleaned markdown into section-aware chunks.
type Structurer struct {
	config docprep.ChunkConfig
}

// NewStructurer returns a Structurer using config.
func NewStructurer(config docprep.ChunkConfig) (*Structurer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Structurer{config: config}, nil
}

// Structure chunks cleaned text. Within each section, every fenced code block
// becomes one code chunk and the remaining words are windowed into text
// chunks of at most the configured size, each seeded with the trailing
// overlap words of the previous one. Positions run 0..N-1 across the
// document.
func (s *Structurer) Structure(cleaned string, meta docprep.Metadata) []*docprep.Chunk {
	var chunks []*docprep.Chunk
	for _, section := range ParseSections(cleaned) {
		chunks = append(chunks, s.chunkSection(section)...)
	}

	for i, c := range chunks {
		c.Position = i
		c.Metadata.SourceURL = meta.URL()
		c.Metadata.ScrapedAt = meta.ScrapedAt()
		c.Metadata.DocTitle = meta.Title()
	}
	return chunks
}

func (s *Structurer) chunkSection(section Section) []*docprep.Chunk {
	if strings.TrimSpace(section.Body) == "" {
		return nil
	}

	var chunks []*docprep.Chunk
	emit := func(content string, tokens int, typ docprep.ChunkType) {
		chunks = append(chunks, &docprep.Chunk{
			ID:      ChunkID(content),
			Content: content,
			Tokens:  tokens,
			Metadata: docprep.ChunkMetadata{
				SectionLevel: section.Level,
				SectionTitle: section.Title,
				Type:         typ,
			},
		})
	}

	for _, block := range codeBlockRe.FindAllString(section.Body, -1) {
		emit(block, len(strings.Fields(block)), docprep.ChunkTypeCode)
	}

	text := codeBlockRe.ReplaceAllString(section.Body, " ")
	for _, window := range s.windows(strings.Fields(text)) {
		emit(strings.Join(window, " "), len(window), docprep.ChunkTypeText)
	}

	return chunks
}

// windows groups words into overlapping windows. A trailing window holding
// only overlap words from its predecessor is not returned.
func (s *Structurer) windows(words []string) [][]string {
	var out [][]string
	var current []string
	fresh := 0
	for _, w := range words {
		current = append(current, w)
		fresh++
		if len(current) >= s.config.Size {
			out = append(out, current)
			overlap := min(s.config.Overlap, len(current))
			current = append([]string(nil), current[len(current)-overlap:]...)
			fresh = 0
		}
	}
	if fresh > 0 {
		out = append(out, current)
	}
	return out
}
