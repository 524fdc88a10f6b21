// Package yaml reads YAML frontmatter and rule files.
package yaml

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/fwojciec/docprep"
	"gopkg.in/yaml.v3"
)

// Ensure FrontmatterParser implements docprep.FrontmatterParser at compile time.
var _ docprep.FrontmatterParser = (*FrontmatterParser)(nil)

const delimiter = "---"

// FrontmatterParser parses a leading "---" delimited YAML block.
type FrontmatterParser struct{}

// NewFrontmatterParser creates a new FrontmatterParser.
func NewFrontmatterParser() *FrontmatterParser {
	return &FrontmatterParser{}
}

// Parse splits raw into metadata and body. Scalar values are stringified;
// timestamps use RFC 3339. Anything that is not a well-formed mapping block
// yields empty metadata and raw unchanged.
func (p *FrontmatterParser) Parse(raw string) (docprep.Metadata, string) {
	block, body, ok := split(raw)
	if !ok {
		return docprep.Metadata{}, raw
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		return docprep.Metadata{}, raw
	}
	if len(doc.Content) == 0 {
		return docprep.Metadata{}, body
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return docprep.Metadata{}, raw
	}

	meta := make(docprep.Metadata, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		meta[root.Content[i].Value] = stringify(root.Content[i+1])
	}
	return meta, body
}

// split finds the frontmatter block between the opening delimiter line and
// the next delimiter line.
func split(raw string) (block, body string, ok bool) {
	text := strings.TrimPrefix(raw, "\ufeff")
	first, rest, found := strings.Cut(text, "\n")
	if !found || strings.TrimRight(first, " \t\r") != delimiter {
		return "", "", false
	}

	lines := strings.SplitAfter(rest, "\n")
	var n int
	for _, line := range lines {
		if strings.TrimRight(line, " \t\r\n") == delimiter {
			return rest[:n], rest[n+len(line):], true
		}
		n += len(line)
	}
	return "", "", false
}

func stringify(n *yaml.Node) string {
	if n.Kind != yaml.ScalarNode {
		var v any
		if err := n.Decode(&v); err != nil {
			return ""
		}
		return fmt.Sprint(v)
	}

	switch n.ShortTag() {
	case "!!null":
		return ""
	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err == nil {
			return formatTimestamp(n.Value, t)
		}
	}
	return n.Value
}

var zoneSuffixRe = regexp.MustCompile(`(?i)(z|[+-]\d{1,2}(:?\d{2})?)$`)

// formatTimestamp renders t in ISO 8601 keeping the shape of the source
// value: dates stay dates, and an offset appears only when one was written.
// Fractional seconds use microsecond precision.
func formatTimestamp(value string, t time.Time) string {
	value = strings.TrimSpace(value)
	if len(value) <= len("2006-01-02") {
		return t.Format("2006-01-02")
	}

	layout := "2006-01-02T15:04:05"
	if t.Nanosecond() != 0 {
		layout += ".000000"
	}
	if zoneSuffixRe.MatchString(value[len("2006-01-02"):]) {
		layout += "-07:00"
	}
	return t.Format(layout)
}
