// Package readability provides a fallback extractor for pages where the
// primary extractor finds no main content.
package readability

import (
	"strings"

	"github.com/fwojciec/docprep"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements docprep.Extractor at compile time.
var _ docprep.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability as the trafilatura Fallback. Unlike a
// primary extractor it never returns an empty article: blank pages, parse
// failures and pages with no scorable content are all EINVALID, which the
// pipeline records as a skipped file.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article title and content. Pages readability cannot
// score are EINVALID.
func (e *Extractor) Extract(rawHTML string) (*docprep.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docprep.Errorf(docprep.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, docprep.Errorf(docprep.EINVALID, "readability: %v", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, docprep.Errorf(docprep.EINVALID, "no main content found")
	}

	return &docprep.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
