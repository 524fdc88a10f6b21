package docprep

import "regexp"

// RuleScope selects how a cleaning rule is applied.
type RuleScope string

// Rule scopes, applied in this order.
const (
	// ScopeHeader and ScopeFooter patterns match across lines
	// (dot matches newline, ^/$ match at line boundaries).
	ScopeHeader RuleScope = "header"
	ScopeFooter RuleScope = "footer"

	// ScopeNavigation patterns are line-oriented.
	ScopeNavigation RuleScope = "navigation"

	// ScopeSection patterns match a header title; the header and its body up
	// to the next line starting with '#' are removed.
	ScopeSection RuleScope = "section"
)

// Valid reports whether s is a known scope.
func (s RuleScope) Valid() bool {
	switch s {
	case ScopeHeader, ScopeFooter, ScopeNavigation, ScopeSection:
		return true
	}
	return false
}

// CleaningRule removes boilerplate matching Pattern. Replace is the
// replacement template (regexp expansion syntax) and is empty for plain removal.
type CleaningRule struct {
	Scope   RuleScope `json:"scope" yaml:"scope"`
	Pattern string    `json:"pattern" yaml:"pattern"`
	Replace string    `json:"replace,omitempty" yaml:"replace"`
}

// Validate returns an error if the scope is unknown or the pattern does not compile.
func (r CleaningRule) Validate() error {
	if !r.Scope.Valid() {
		return Errorf(EINVALID, "unknown rule scope %q", r.Scope)
	}
	if r.Pattern == "" {
		return Errorf(EINVALID, "empty pattern in %s rule", r.Scope)
	}
	if _, err := regexp.Compile(r.Pattern); err != nil {
		return Errorf(EINVALID, "invalid %s pattern %q: %v", r.Scope, r.Pattern, err)
	}
	return nil
}

// RuleSet is user-supplied rule configuration.
type RuleSet struct {
	// Cleaning rules are appended to the defaults.
	Cleaning []CleaningRule `yaml:"cleaning"`

	// Categories, when non-empty, replace the default category rules.
	Categories CategoryRules `yaml:"categories"`
}

// DefaultCleaningRules returns the built-in boilerplate patterns.
func DefaultCleaningRules() []CleaningRule {
	return []CleaningRule{
		// Header boilerplate.
		{Scope: ScopeHeader, Pattern: `\[.*?home page.*?\]\(.*?\)`},
		{Scope: ScopeHeader, Pattern: `Search\.\.\.`},
		{Scope: ScopeHeader, Pattern: `⌘K`},
		{Scope: ScopeHeader, Pattern: `Navigation`},
		{Scope: ScopeHeader, Pattern: `\* \[Research\].*?\n`},
		{Scope: ScopeHeader, Pattern: `\* \[News\].*?\n`},
		{Scope: ScopeHeader, Pattern: `\* \[Go to.*?\].*?\n`},
		{Scope: ScopeHeader, Pattern: `English\n`},
		{Scope: ScopeHeader, Pattern: `!\[.*?logo\]\(.*?\)`},

		// Footer boilerplate.
		{Scope: ScopeFooter, Pattern: `Was this page helpful\?.*?YesNo`},
		{Scope: ScopeFooter, Pattern: `\[x\]\(https://x\.com/.*?\)`},
		{Scope: ScopeFooter, Pattern: `\[linkedin\]\(.*?\)`},
		{Scope: ScopeFooter, Pattern: `On this page\n.*?(\n\n|\z)`, Replace: "$1"},

		// Navigation links.
		{Scope: ScopeNavigation, Pattern: `\[Welcome\]\(.*?\)`},
		{Scope: ScopeNavigation, Pattern: `\[Developer Guide\]\(.*?\)`},
		{Scope: ScopeNavigation, Pattern: `\[API Guide\]\(.*?\)`},
		{Scope: ScopeNavigation, Pattern: `\[Resources\]\(.*?\)`},
		{Scope: ScopeNavigation, Pattern: `\[Release Notes\]\(.*?\)`},
		{Scope: ScopeNavigation, Pattern: `\* \[Documentation\]\(.*?\)`},
		{Scope: ScopeNavigation, Pattern: `\* \[Developer Console\]\(.*?\)`},
		{Scope: ScopeNavigation, Pattern: `\* \[Support\]\(.*?\)`},

		// Named navigation sections.
		{Scope: ScopeSection, Pattern: `First steps`},
		{Scope: ScopeSection, Pattern: `Models & pricing`},
		{Scope: ScopeSection, Pattern: `Learn about Claude`},
		{Scope: ScopeSection, Pattern: `Explore features`},
		{Scope: ScopeSection, Pattern: `Agent components`},
		{Scope: ScopeSection, Pattern: `Test & evaluate`},
		{Scope: ScopeSection, Pattern: `Legal center`},
	}
}
