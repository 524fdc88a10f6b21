// Package markdown cleans and chunks markdown documents.
package markdown

import (
	"regexp"
	"strings"
)

// IntroductionTitle names the implicit section holding content before the
// first header.
const IntroductionTitle = "Introduction"

// headingRe matches section headers. Level 6 headings are body text.
var headingRe = regexp.MustCompile(`^(#{1,5}) (.+)$`)

// codeBlockRe matches fenced code blocks including their fences.
var codeBlockRe = regexp.MustCompile("(?s)```.*?```")

// Section is a header and the lines that follow it up to the next header.
type Section struct {
	Level int
	Title string
	Body  string
}

// ParseSections splits markdown into sections. Header lines are not part of
// any body. Lines inside fenced code blocks never start a section. Sections
// with no lines are dropped.
func ParseSections(text string) []Section {
	var sections []Section
	current := Section{Title: IntroductionTitle}
	var lines []string
	inFence := false

	flush := func() {
		if len(lines) > 0 {
			current.Body = strings.Join(lines, "\n")
			sections = append(sections, current)
		}
		lines = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if isFence(line) {
			inFence = !inFence
		}
		if !inFence {
			if m := headingRe.FindStringSubmatch(line); m != nil {
				flush()
				current = Section{Level: len(m[1]), Title: m[2]}
				continue
			}
		}
		lines = append(lines, line)
	}
	flush()

	return sections
}

// isFence reports whether line opens or closes a fenced block. A line that
// also closes its own fence, like "```npm install```", is a complete block.
func isFence(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "```") {
		return false
	}
	return !strings.Contains(strings.TrimLeft(trimmed, "`"), "```")
}
