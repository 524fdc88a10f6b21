package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fwojciec/docprep"
)

// Ensure Cleaner implements docprep.Cleaner at compile time.
var _ docprep.Cleaner = (*Cleaner)(nil)

var (
	emptyBulletRe = regexp.MustCompile(`(?m)^[ \t]*[*-][ \t]*$`)
	blankRunRe    = regexp.MustCompile(`\n{3,}`)
	spaceRunRe    = regexp.MustCompile(` {2,}`)
	placeholderRe = regexp.MustCompile(`@@DOCPREP_CODE_\d+@@`)
)

type compiledRule struct {
	re      *regexp.Regexp
	replace string
}

// apply replaces every match of the rule. Code placeholders inside a match
// are carried over into the replacement so a block is never dropped.
func (r compiledRule) apply(text string) string {
	if !placeholderRe.MatchString(text) {
		return r.re.ReplaceAllString(text, r.replace)
	}

	var out []byte
	last := 0
	for _, m := range r.re.FindAllStringSubmatchIndex(text, -1) {
		out = append(out, text[last:m[0]]...)
		expanded := r.re.ExpandString(nil, r.replace, text, m)
		out = append(out, expanded...)
		for _, token := range placeholderRe.FindAllString(text[m[0]:m[1]], -1) {
			if !strings.Contains(string(expanded), token) {
				out = append(out, "\n\n"+token+"\n\n"...)
			}
		}
		last = m[1]
	}
	return string(append(out, text[last:]...))
}

// Cleaner removes boilerplate from markdown using an ordered rule list.
// A Cleaner is safe for concurrent use.
type Cleaner struct {
	header     []compiledRule
	footer     []compiledRule
	navigation []compiledRule
	sections   []*regexp.Regexp
}

// NewCleaner compiles rules. Rules keep their relative order within a scope;
// scopes run header, footer, navigation, then section.
func NewCleaner(rules []docprep.CleaningRule) (*Cleaner, error) {
	c := &Cleaner{}
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, err
		}
		switch rule.Scope {
		case docprep.ScopeHeader:
			c.header = append(c.header, compileRule(`(?sm)`, rule))
		case docprep.ScopeFooter:
			c.footer = append(c.footer, compileRule(`(?sm)`, rule))
		case docprep.ScopeNavigation:
			c.navigation = append(c.navigation, compileRule(`(?m)`, rule))
		case docprep.ScopeSection:
			c.sections = append(c.sections, regexp.MustCompile(`^#{1,5} *(?:`+rule.Pattern+`)[ \t]*$`))
		}
	}
	return c, nil
}

func compileRule(flags string, rule docprep.CleaningRule) compiledRule {
	return compiledRule{
		re:      regexp.MustCompile(flags + `(?:` + rule.Pattern + `)`),
		replace: rule.Replace,
	}
}

// Clean strips boilerplate and normalizes whitespace. With preserveStructure,
// fenced code blocks are left byte-for-byte intact.
func (c *Cleaner) Clean(body string, preserveStructure bool) string {
	text := body

	var blocks []string
	if preserveStructure {
		text = codeBlockRe.ReplaceAllStringFunc(text, func(block string) string {
			blocks = append(blocks, block)
			return placeholder(len(blocks) - 1)
		})
	}

	for _, rules := range [][]compiledRule{c.header, c.footer, c.navigation} {
		for _, r := range rules {
			text = r.apply(text)
		}
	}
	text = c.removeSections(text)

	text = emptyBulletRe.ReplaceAllString(text, "")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	for i, block := range blocks {
		text = strings.Replace(text, placeholder(i), block, 1)
	}
	return text
}

// removeSections drops every header matching a section rule together with
// the lines up to the next line starting with '#'.
func (c *Cleaner) removeSections(text string) string {
	if len(c.sections) == 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	skipping := false
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			skipping = c.matchesSection(line)
			if skipping {
				continue
			}
		}
		if !skipping {
			kept = append(kept, line)
			continue
		}
		// Code blocks outlive the section that held them.
		kept = append(kept, placeholderRe.FindAllString(line, -1)...)
	}
	return strings.Join(kept, "\n")
}

func (c *Cleaner) matchesSection(line string) bool {
	for _, re := range c.sections {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func placeholder(i int) string {
	return fmt.Sprintf("@@DOCPREP_CODE_%d@@", i)
}
