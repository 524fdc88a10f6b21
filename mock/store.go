package mock

import (
	"context"

	"github.com/fwojciec/docprep"
)

var (
	_ docprep.OutputStore = (*OutputStore)(nil)
	_ docprep.IndexWriter = (*IndexWriter)(nil)
	_ docprep.IndexReader = (*IndexReader)(nil)
)

// OutputStore is a mock implementation of docprep.OutputStore.
type OutputStore struct {
	SaveDocumentFn func(ctx context.Context, name docprep.OutputName, doc *docprep.ProcessedDocument) (string, error)
	SaveSummaryFn  func(ctx context.Context, summary *docprep.Summary) error
	SaveIndexFn    func(ctx context.Context, entries []docprep.IndexEntry) error
	CommitFn       func() error
	AbortFn        func() error
}

func (s *OutputStore) SaveDocument(ctx context.Context, name docprep.OutputName, doc *docprep.ProcessedDocument) (string, error) {
	return s.SaveDocumentFn(ctx, name, doc)
}

func (s *OutputStore) SaveSummary(ctx context.Context, summary *docprep.Summary) error {
	return s.SaveSummaryFn(ctx, summary)
}

func (s *OutputStore) SaveIndex(ctx context.Context, entries []docprep.IndexEntry) error {
	return s.SaveIndexFn(ctx, entries)
}

func (s *OutputStore) Commit() error {
	return s.CommitFn()
}

func (s *OutputStore) Abort() error {
	return s.AbortFn()
}

// IndexWriter is a mock implementation of docprep.IndexWriter.
type IndexWriter struct {
	WriteIndexFn func(ctx context.Context, docs []*docprep.ProcessedDocument) error
}

func (w *IndexWriter) WriteIndex(ctx context.Context, docs []*docprep.ProcessedDocument) error {
	return w.WriteIndexFn(ctx, docs)
}

// IndexReader is a mock implementation of docprep.IndexReader.
type IndexReader struct {
	ReadIndexFn func(ctx context.Context) ([]docprep.IndexEntry, error)
}

func (r *IndexReader) ReadIndex(ctx context.Context) ([]docprep.IndexEntry, error) {
	return r.ReadIndexFn(ctx)
}
