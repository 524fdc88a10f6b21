package mock

import "github.com/fwojciec/docprep"

var _ docprep.Sorter = (*Sorter)(nil)

// Sorter is a mock implementation of docprep.Sorter.
type Sorter struct {
	SortFn func(docs []*docprep.ProcessedDocument) []*docprep.ProcessedDocument
}

func (s *Sorter) Sort(docs []*docprep.ProcessedDocument) []*docprep.ProcessedDocument {
	return s.SortFn(docs)
}
