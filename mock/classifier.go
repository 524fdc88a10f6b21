package mock

import (
	"context"

	"github.com/fwojciec/docprep"
)

var _ docprep.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of docprep.Classifier.
type Classifier struct {
	ClassifyFn func(ctx context.Context, doc *docprep.ProcessedDocument) (docprep.Category, error)
}

func (c *Classifier) Classify(ctx context.Context, doc *docprep.ProcessedDocument) (docprep.Category, error) {
	return c.ClassifyFn(ctx, doc)
}
