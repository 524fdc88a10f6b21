package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docprep"
	"github.com/google/uuid"
)

// Ensure IndexStore implements docprep.IndexWriter at compile time.
var _ docprep.IndexWriter = (*IndexStore)(nil)

// Ensure IndexStore implements docprep.IndexReader at compile time.
var _ docprep.IndexReader = (*IndexStore)(nil)

// IndexStore keeps the latest processed document set in SQLite.
// Each WriteIndex replaces the previous contents.
type IndexStore struct {
	db *DB

	// Now returns the indexing timestamp. Defaults to time.Now.
	Now func() time.Time
}

// NewIndexStore creates a new IndexStore.
func NewIndexStore(db *DB) *IndexStore {
	return &IndexStore{db: db, Now: time.Now}
}

// IndexedDocument is a document row of the index.
type IndexedDocument struct {
	ID           string
	Position     int
	FilePath     string
	Title        string
	Category     docprep.Category
	Complexity   float64
	Dependencies []string
	Chunks       int
	ContentHash  string
	IndexedAt    time.Time
}

// hashContent returns the hex xxHash of content.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// WriteIndex replaces the index with docs in a single transaction.
func (s *IndexStore) WriteIndex(ctx context.Context, docs []*docprep.ProcessedDocument) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM documents`); err != nil {
		return fmt.Errorf("clear index: %w", err)
	}

	indexedAt := s.Now().UTC().Format(time.RFC3339)
	for i, doc := range docs {
		if err := insertDocument(ctx, tx, i, doc, indexedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func insertDocument(ctx context.Context, tx *sql.Tx, position int, doc *docprep.ProcessedDocument, indexedAt string) error {
	deps := doc.Dependencies
	if deps == nil {
		deps = []string{}
	}
	depsJSON, err := json.Marshal(deps)
	if err != nil {
		return err
	}

	id := uuid.New().String()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (id, position, file_path, rel_path, source_folder, original_url, title,
			category, complexity, dependencies, content_hash, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, position, doc.FilePath, doc.RelPath, doc.SourceFolder, doc.OriginalURL, doc.Title,
		string(doc.Category), doc.ComplexityScore, string(depsJSON), hashContent(doc.Content("\n\n")), indexedAt)
	if err != nil {
		return fmt.Errorf("insert document %s: %w", doc.FilePath, err)
	}

	for j, c := range doc.Chunks {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO chunks (document_id, position, chunk_id, content, tokens, section_level,
				section_title, type, source_url, scraped_at, doc_title)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, j, c.ID, c.Content, c.Tokens, c.Metadata.SectionLevel, c.Metadata.SectionTitle,
			string(c.Metadata.Type), c.Metadata.SourceURL, c.Metadata.ScrapedAt, c.Metadata.DocTitle)
		if err != nil {
			return fmt.Errorf("insert chunk %d of %s: %w", j, doc.FilePath, err)
		}
	}
	return nil
}

// ReadIndex returns index entries ordered by document position, then chunk
// position. Returns ENOTFOUND if nothing has been indexed.
func (s *IndexStore) ReadIndex(ctx context.Context) ([]docprep.IndexEntry, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, docprep.Errorf(docprep.ENOTFOUND, "index is empty")
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.chunk_id, c.content, c.section_level, c.section_title, c.type,
			c.source_url, c.scraped_at, c.doc_title,
			d.category, d.complexity, d.title, d.file_path
		FROM chunks c
		JOIN documents d ON d.id = c.document_id
		ORDER BY d.position, c.position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []docprep.IndexEntry{}
	for rows.Next() {
		var e docprep.IndexEntry
		var chunkType, category string
		if err := rows.Scan(&e.ChunkID, &e.Content, &e.Metadata.SectionLevel, &e.Metadata.SectionTitle,
			&chunkType, &e.Metadata.SourceURL, &e.Metadata.ScrapedAt, &e.Metadata.DocTitle,
			&category, &e.Metadata.Complexity, &e.Metadata.ParentTitle, &e.Metadata.SourceFile); err != nil {
			return nil, err
		}
		e.Metadata.Type = docprep.ChunkType(chunkType)
		e.Metadata.Category = docprep.Category(category)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Documents returns the indexed documents in emission order, optionally
// restricted to one category.
func (s *IndexStore) Documents(ctx context.Context, category docprep.Category) ([]*IndexedDocument, error) {
	query := `
		SELECT d.id, d.position, d.file_path, d.title, d.category, d.complexity,
			d.dependencies, d.content_hash, d.indexed_at,
			(SELECT COUNT(*) FROM chunks c WHERE c.document_id = d.id)
		FROM documents d`
	var args []any
	if category != "" {
		query += ` WHERE d.category = ?`
		args = append(args, string(category))
	}
	query += ` ORDER BY d.position`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []*IndexedDocument{}
	for rows.Next() {
		var d IndexedDocument
		var category, deps, indexedAt string
		if err := rows.Scan(&d.ID, &d.Position, &d.FilePath, &d.Title, &category, &d.Complexity,
			&deps, &d.ContentHash, &indexedAt, &d.Chunks); err != nil {
			return nil, err
		}
		d.Category = docprep.Category(category)
		if err := json.Unmarshal([]byte(deps), &d.Dependencies); err != nil {
			return nil, fmt.Errorf("decode dependencies of %s: %w", d.FilePath, err)
		}
		if d.IndexedAt, err = time.Parse(time.RFC3339, indexedAt); err != nil {
			return nil, fmt.Errorf("parse indexed_at of %s: %w", d.FilePath, err)
		}
		docs = append(docs, &d)
	}
	return docs, rows.Err()
}
