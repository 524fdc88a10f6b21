package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docprep"
)

// Ensure ChromeStripper implements docprep.Extractor at compile time.
var _ docprep.Extractor = (*ChromeStripper)(nil)

// nonContent is removed from every page regardless of framework.
const nonContent = "script, style, noscript, template, iframe"

// ChromeStripper removes the detected framework's navigation elements and
// hands the remaining page to the next extractor.
type ChromeStripper struct {
	next docprep.Extractor
}

// NewChromeStripper creates a new ChromeStripper.
func NewChromeStripper(next docprep.Extractor) *ChromeStripper {
	return &ChromeStripper{next: next}
}

// Extract strips chrome, delegates, and records the detected framework.
func (s *ChromeStripper) Extract(rawHTML string) (*docprep.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docprep.Errorf(docprep.EINVALID, "empty HTML input")
	}

	stripped, framework, err := Strip(rawHTML)
	if err != nil {
		return nil, err
	}

	result, err := s.next.Extract(stripped)
	if err != nil {
		return nil, err
	}
	result.Framework = framework
	return result, nil
}

// Strip returns rawHTML without scripts, styles and the chrome of the
// detected framework. Head metadata is kept.
func Strip(rawHTML string) (string, docprep.Framework, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", docprep.FrameworkUnknown, docprep.Errorf(docprep.EINVALID, "failed to parse HTML: %v", err)
	}

	framework := Detect(doc)

	doc.Find("body").Find(nonContent).Remove()
	if p := profileFor(framework); p != nil {
		for _, sel := range p.chrome {
			doc.Find("body").Find(sel).Remove()
		}
	}

	out, err := doc.Html()
	if err != nil {
		return "", framework, err
	}
	return out, framework, nil
}
