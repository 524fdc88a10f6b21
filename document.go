package docprep

import (
	"context"
	"strings"
)

// Well-known frontmatter keys written by the crawler.
const (
	MetaURL       = "url"
	MetaTitle     = "title"
	MetaScrapedAt = "scraped_at"
)

// Metadata holds frontmatter key/value pairs of a raw document.
// Datetime values are stored in RFC 3339 form.
type Metadata map[string]string

// URL returns the source URL of the document, if any.
func (m Metadata) URL() string { return m[MetaURL] }

// Title returns the frontmatter title, if any.
func (m Metadata) Title() string { return m[MetaTitle] }

// ScrapedAt returns the scrape timestamp, if any.
func (m Metadata) ScrapedAt() string { return m[MetaScrapedAt] }

// FrontmatterParser splits a raw document into metadata and body.
type FrontmatterParser interface {
	// Parse returns the frontmatter and the remaining body.
	// Malformed frontmatter is treated as absent: Parse returns empty
	// metadata and the raw text unchanged.
	Parse(raw string) (Metadata, string)
}

// ProcessedDocument is a cleaned, chunked input file.
type ProcessedDocument struct {
	FilePath        string   `json:"file_path"`
	RelPath         string   `json:"rel_path"`
	SourceFolder    string   `json:"source_folder"`
	OriginalURL     string   `json:"original_url"`
	Title           string   `json:"title"`
	Chunks          []*Chunk `json:"chunks"`
	Category        Category `json:"category"`
	Topics          []string `json:"topics"`
	Dependencies    []string `json:"dependencies"`
	ComplexityScore float64  `json:"complexity_score"`
}

// Content returns the chunk contents joined by sep.
func (d *ProcessedDocument) Content(sep string) string {
	parts := make([]string, 0, len(d.Chunks))
	for _, c := range d.Chunks {
		parts = append(parts, c.Content)
	}
	return strings.Join(parts, sep)
}

// TotalTokens returns the sum of chunk token counts.
func (d *ProcessedDocument) TotalTokens() int {
	var n int
	for _, c := range d.Chunks {
		n += c.Tokens
	}
	return n
}

// CodeChunks returns the number of chunks of type code.
func (d *ProcessedDocument) CodeChunks() int {
	var n int
	for _, c := range d.Chunks {
		if c.Metadata.Type == ChunkTypeCode {
			n++
		}
	}
	return n
}

// Sorter assigns dependencies and complexity scores to a document set and
// returns the documents in their final emission order.
type Sorter interface {
	Sort(docs []*ProcessedDocument) []*ProcessedDocument
}

// OutputName identifies where a document's artifacts are written.
// Dir is relative to the output root and empty when output is flattened.
type OutputName struct {
	Dir  string
	Stem string
}

// OutputStore persists pipeline artifacts with atomic semantics.
// Writes go to a staging location; Commit makes them permanent;
// Abort discards them.
type OutputStore interface {
	// SaveDocument writes the cleaned markdown and the per-chunk files.
	// Returns the final path of the cleaned markdown file.
	SaveDocument(ctx context.Context, name OutputName, doc *ProcessedDocument) (string, error)

	// SaveSummary writes the processing summary.
	SaveSummary(ctx context.Context, summary *Summary) error

	// SaveIndex writes the flat searchable index.
	SaveIndex(ctx context.Context, entries []IndexEntry) error

	Commit() error
	Abort() error
}

// IndexWriter persists the ordered document set as a searchable index.
type IndexWriter interface {
	WriteIndex(ctx context.Context, docs []*ProcessedDocument) error
}

// IndexReader loads a previously written index.
type IndexReader interface {
	// ReadIndex returns all index entries in emission order.
	// Returns ENOTFOUND if no index exists.
	ReadIndex(ctx context.Context) ([]IndexEntry, error)
}
