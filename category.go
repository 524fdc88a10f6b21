package docprep

import (
	"context"
	"strings"
)

// Category is a document's role within a documentation set.
type Category string

// Categories in priority order.
const (
	CategoryGettingStarted  Category = "getting_started"
	CategoryConcepts        Category = "concepts"
	CategoryGuides          Category = "guides"
	CategoryAPIReference    Category = "api_reference"
	CategoryExamples        Category = "examples"
	CategoryAdvanced        Category = "advanced"
	CategoryTroubleshooting Category = "troubleshooting"
)

// DefaultCategory is assigned when no rule matches.
const DefaultCategory = CategoryGuides

var categoryOrder = []Category{
	CategoryGettingStarted,
	CategoryConcepts,
	CategoryGuides,
	CategoryAPIReference,
	CategoryExamples,
	CategoryAdvanced,
	CategoryTroubleshooting,
}

// Categories returns all known categories in priority order.
func Categories() []Category {
	return append([]Category(nil), categoryOrder...)
}

// Rank returns the category's position in the priority order.
// Unknown categories rank after all known ones.
func (c Category) Rank() int {
	for i, known := range categoryOrder {
		if c == known {
			return i
		}
	}
	return len(categoryOrder)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c.Rank() < len(categoryOrder)
}

// ParseCategory normalizes a label and reports whether it names a known category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}

// CategoryRule maps a category to the keywords that select it.
type CategoryRule struct {
	Category Category `json:"category" yaml:"category"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// CategoryRules is an ordered rule list. Earlier rules win ties.
type CategoryRules []CategoryRule

// DefaultCategoryRules returns the built-in keyword table.
func DefaultCategoryRules() CategoryRules {
	return CategoryRules{
		{CategoryGettingStarted, []string{"introduction", "intro", "getting started", "getting-started", "quickstart", "setup", "installation"}},
		{CategoryConcepts, []string{"overview", "concepts", "architecture", "principles"}},
		{CategoryGuides, []string{"guide", "tutorial", "how-to", "walkthrough"}},
		{CategoryAPIReference, []string{"api", "reference", "endpoints", "methods"}},
		{CategoryExamples, []string{"example", "sample", "demo", "code"}},
		{CategoryAdvanced, []string{"advanced", "optimization", "performance", "scaling"}},
		{CategoryTroubleshooting, []string{"troubleshooting", "errors", "debugging", "issues"}},
	}
}

// Validate returns an error if a rule names an unknown category.
func (r CategoryRules) Validate() error {
	for _, rule := range r {
		if !rule.Category.Valid() {
			return Errorf(EINVALID, "unknown category %q", rule.Category)
		}
	}
	return nil
}

// Classifier assigns a category to a document.
type Classifier interface {
	// Classify returns one of the known categories.
	Classify(ctx context.Context, doc *ProcessedDocument) (Category, error)
}

// Ensure RuleClassifier implements Classifier at compile time.
var _ Classifier = (*RuleClassifier)(nil)

// RuleClassifier classifies documents by keyword matches in title and URL.
type RuleClassifier struct {
	rules CategoryRules
}

// NewRuleClassifier returns a classifier over a copy of rules.
func NewRuleClassifier(rules CategoryRules) *RuleClassifier {
	copied := make(CategoryRules, len(rules))
	for i, rule := range rules {
		keywords := make([]string, len(rule.Keywords))
		for j, kw := range rule.Keywords {
			keywords[j] = strings.ToLower(kw)
		}
		copied[i] = CategoryRule{Category: rule.Category, Keywords: keywords}
	}
	return &RuleClassifier{rules: copied}
}

// Classify never fails.
func (c *RuleClassifier) Classify(_ context.Context, doc *ProcessedDocument) (Category, error) {
	return c.Match(doc.Title, doc.OriginalURL), nil
}

// Match returns the first category whose keywords appear in title or url,
// or DefaultCategory.
func (c *RuleClassifier) Match(title, url string) Category {
	title = strings.ToLower(title)
	url = strings.ToLower(url)
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(title, kw) || strings.Contains(url, kw) {
				return rule.Category
			}
		}
	}
	return DefaultCategory
}
