package mock

import "github.com/fwojciec/docprep"

var (
	_ docprep.Extractor = (*Extractor)(nil)
	_ docprep.Converter = (*Converter)(nil)
)

// Extractor is a mock implementation of docprep.Extractor.
type Extractor struct {
	ExtractFn func(rawHTML string) (*docprep.ExtractResult, error)
}

func (e *Extractor) Extract(rawHTML string) (*docprep.ExtractResult, error) {
	return e.ExtractFn(rawHTML)
}

// Converter is a mock implementation of docprep.Converter.
type Converter struct {
	ConvertFn func(contentHTML string) (string, error)
}

func (c *Converter) Convert(contentHTML string) (string, error) {
	return c.ConvertFn(contentHTML)
}
