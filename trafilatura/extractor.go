// Package trafilatura extracts the main content of saved documentation pages.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docprep"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docprep.Extractor at compile time.
var _ docprep.Extractor = (*Extractor)(nil)

// Extractor strips site chrome from a saved HTML page using go-trafilatura.
type Extractor struct {
	opts trafilatura.Options

	// Fallback, if set, handles pages where trafilatura fails or finds no
	// main content.
	Fallback docprep.Extractor
}

// NewExtractor creates a new Extractor. Links and code are kept since
// cleaning rules and code chunking operate on them downstream.
func NewExtractor() *Extractor {
	return &Extractor{opts: trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		IncludeLinks:    true,
	}}
}

// Extract returns the page title, canonical URL and main content as HTML.
func (e *Extractor) Extract(rawHTML string) (*docprep.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docprep.Errorf(docprep.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err == nil && result.ContentNode == nil {
		err = docprep.Errorf(docprep.EINVALID, "no main content found")
	}
	if err != nil {
		if e.Fallback != nil {
			return e.Fallback.Extract(rawHTML)
		}
		return nil, err
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, err
	}

	return &docprep.ExtractResult{
		Title:       strings.TrimSpace(result.Metadata.Title),
		URL:         result.Metadata.URL,
		ContentHTML: buf.String(),
	}, nil
}
