// Package slog provides logging decorators for docprep services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docprep"
)

// Ensure LoggingClassifier implements docprep.Classifier at compile time.
var _ docprep.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with debug logging.
type LoggingClassifier struct {
	next   docprep.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next docprep.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the outcome.
func (c *LoggingClassifier) Classify(ctx context.Context, doc *docprep.ProcessedDocument) (category docprep.Category, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("classify",
			"file", doc.RelPath,
			"category", category,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Classify(ctx, doc)
}
