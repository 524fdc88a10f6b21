// Package htmltomarkdown converts extracted HTML into pipeline markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/docprep"
)

// Ensure Converter implements docprep.Converter at compile time.
var _ docprep.Converter = (*Converter)(nil)

// Converter produces markdown in the shape the cleaner and structurer
// expect. Sections are split only on "#" headings and code is recognized only
// inside backtick fences, so setext headings or tilde fences would merge
// sections and leave code in prose chunks. Dash bullets keep the empty
// bullet cleanup working. Output is trimmed, and empty input is EINVALID so
// the page is skipped.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
				commonmark.WithCodeBlockFence("```"),
				commonmark.WithBulletListMarker("-"),
			),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into markdown with normalized line endings.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docprep.Errorf(docprep.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(strings.ReplaceAll(md, "\r\n", "\n")), nil
}
