package pipeline

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/docprep"
	"golang.org/x/time/rate"
)

// Ensure ExternalClassifier implements docprep.Classifier at compile time.
var _ docprep.Classifier = (*ExternalClassifier)(nil)

// excerptLength is the number of characters of the first chunk sent to the model.
const excerptLength = 500

// ClassifierSystemPrompt is the system instruction for classification calls.
const ClassifierSystemPrompt = "You are a documentation classifier."

// ExternalClassifier asks a language model for a category and falls back to
// another classifier when the model fails or answers outside the known set.
type ExternalClassifier struct {
	Completer docprep.Completer
	Fallback  docprep.Classifier
	Retry     RetryPolicy

	// Limiter, if set, spaces out completion calls.
	Limiter *rate.Limiter
}

// NewExternalClassifier returns a classifier with the default retry policy.
func NewExternalClassifier(completer docprep.Completer, fallback docprep.Classifier) *ExternalClassifier {
	return &ExternalClassifier{
		Completer: completer,
		Fallback:  fallback,
		Retry:     DefaultRetryPolicy(),
	}
}

// Classify never returns a category outside the known set. Model failures
// are absorbed by the fallback; only the fallback's own error is returned.
func (c *ExternalClassifier) Classify(ctx context.Context, doc *docprep.ProcessedDocument) (docprep.Category, error) {
	req := docprep.CompletionRequest{
		System:      ClassifierSystemPrompt,
		Prompt:      BuildClassifyPrompt(doc),
		Temperature: 0.1,
		MaxTokens:   50,
	}

	var answer string
	err := c.Retry.Do(ctx, func(ctx context.Context) error {
		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx); err != nil {
				return err
			}
		}
		var err error
		answer, err = c.Completer.Complete(ctx, req)
		return err
	})
	if err == nil {
		if category, ok := docprep.ParseCategory(answer); ok {
			return category, nil
		}
	}

	return c.Fallback.Classify(ctx, doc)
}

// BuildClassifyPrompt lists the categories and the document's title, URL
// and opening text.
func BuildClassifyPrompt(doc *docprep.ProcessedDocument) string {
	var excerpt string
	if len(doc.Chunks) > 0 {
		excerpt = truncate(doc.Chunks[0].Content, excerptLength)
	}

	var sb strings.Builder
	sb.WriteString("Classify the following documentation into one of these categories:\n")
	for _, d := range categoryDescriptions {
		fmt.Fprintf(&sb, "- %s: %s\n", d.category, d.description)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Document Title: %s\n", doc.Title)
	fmt.Fprintf(&sb, "Document URL: %s\n", doc.OriginalURL)
	fmt.Fprintf(&sb, "First %d characters: %s\n", excerptLength, excerpt)
	sb.WriteString("\nReturn only the category name.")
	return sb.String()
}

var categoryDescriptions = []struct {
	category    docprep.Category
	description string
}{
	{docprep.CategoryGettingStarted, "Introduction, setup, installation guides"},
	{docprep.CategoryConcepts, "Core concepts, architecture, principles"},
	{docprep.CategoryGuides, "How-to guides, tutorials, walkthroughs"},
	{docprep.CategoryAPIReference, "API documentation, method references"},
	{docprep.CategoryExamples, "Code examples, demos, samples"},
	{docprep.CategoryAdvanced, "Advanced topics, optimization, scaling"},
	{docprep.CategoryTroubleshooting, "Error handling, debugging, common issues"},
}

// truncate returns the first n runes of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
