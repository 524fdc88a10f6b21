package docprep

// ChunkType distinguishes prose chunks from fenced code blocks.
type ChunkType string

// Chunk types.
const (
	ChunkTypeText ChunkType = "text"
	ChunkTypeCode ChunkType = "code"
)

// Chunk represents a section of a document optimized for embedding and retrieval.
type Chunk struct {
	ID        string        `json:"chunk_id"`
	Content   string        `json:"content"`
	Metadata  ChunkMetadata `json:"metadata"`
	ParentDoc string        `json:"parent_doc"`
	Position  int           `json:"position"`
	Tokens    int           `json:"tokens"`
}

// ChunkMetadata contains contextual information about a chunk.
type ChunkMetadata struct {
	// Depth of the nearest enclosing header, 0 before the first header.
	SectionLevel int       `json:"section_level"`
	SectionTitle string    `json:"section_title"`
	Type         ChunkType `json:"type"`

	// Document-level fields merged in after structuring.
	SourceURL string `json:"source_url"`
	ScrapedAt string `json:"scraped_at"`
	DocTitle  string `json:"doc_title"`
}

// ChunkConfig controls word-window chunking.
type ChunkConfig struct {
	Size    int `json:"chunk_size"`
	Overlap int `json:"chunk_overlap"`
}

// Default chunking parameters, in words.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// DefaultChunkConfig returns the default chunking parameters.
func DefaultChunkConfig() ChunkConfig {
	return ChunkConfig{Size: DefaultChunkSize, Overlap: DefaultChunkOverlap}
}

// Validate returns an error if the configuration cannot make progress.
func (c ChunkConfig) Validate() error {
	if c.Size <= 0 {
		return Errorf(EINVALID, "chunk size must be positive, got %d", c.Size)
	}
	if c.Overlap < 0 {
		return Errorf(EINVALID, "chunk overlap must not be negative, got %d", c.Overlap)
	}
	if c.Overlap >= c.Size {
		return Errorf(EINVALID, "chunk overlap (%d) must be smaller than chunk size (%d)", c.Overlap, c.Size)
	}
	return nil
}

// IndexEntry is one element of the flat searchable index.
type IndexEntry struct {
	ChunkID  string        `json:"chunk_id"`
	Content  string        `json:"content"`
	Metadata IndexMetadata `json:"metadata"`
}

// IndexMetadata is chunk metadata with document fields denormalized in.
type IndexMetadata struct {
	ChunkMetadata
	Category    Category `json:"category"`
	Complexity  float64  `json:"complexity"`
	ParentTitle string   `json:"parent_title"`
	SourceFile  string   `json:"source_file"`
}

// BuildIndex flattens documents into index entries, preserving document order
// and chunk order within each document. Metadata is copied, not shared.
func BuildIndex(docs []*ProcessedDocument) []IndexEntry {
	var entries []IndexEntry
	for _, doc := range docs {
		for _, c := range doc.Chunks {
			entries = append(entries, IndexEntry{
				ChunkID: c.ID,
				Content: c.Content,
				Metadata: IndexMetadata{
					ChunkMetadata: c.Metadata,
					Category:      doc.Category,
					Complexity:    doc.ComplexityScore,
					ParentTitle:   doc.Title,
					SourceFile:    doc.FilePath,
				},
			})
		}
	}
	return entries
}
