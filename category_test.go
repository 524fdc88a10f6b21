package docprep_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docprep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleClassifier_Classify(t *testing.T) {
	t.Parallel()

	classifier := docprep.NewRuleClassifier(docprep.DefaultCategoryRules())

	tests := []struct {
		name  string
		title string
		url   string
		want  docprep.Category
	}{
		{name: "title keyword", title: "Installation", want: docprep.CategoryGettingStarted},
		{name: "getting started title", title: "Getting Started", want: docprep.CategoryGettingStarted},
		{name: "url keyword", title: "Untitled", url: "https://example.com/docs/api/users", want: docprep.CategoryAPIReference},
		{name: "case insensitive", title: "TROUBLESHOOTING Guide", want: docprep.CategoryGuides},
		{name: "troubleshooting only", title: "Common Issues", want: docprep.CategoryTroubleshooting},
		{name: "default when nothing matches", title: "Pricing", url: "https://docs.acme.io/pricing", want: docprep.CategoryGuides},
		{name: "earlier rule wins over match count", title: "Advanced API Reference Overview", want: docprep.CategoryConcepts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := &docprep.ProcessedDocument{Title: tt.title, OriginalURL: tt.url}

			got, err := classifier.Classify(context.Background(), doc)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestRuleClassifier_CopiesRules(t *testing.T) {
	t.Parallel()

	rules := docprep.CategoryRules{{Category: docprep.CategoryExamples, Keywords: []string{"Cookbook"}}}
	classifier := docprep.NewRuleClassifier(rules)

	rules[0].Keywords[0] = "changed"

	assert.Equal(t, docprep.CategoryExamples, classifier.Match("The cookbook", ""))
}

func TestCategory_Rank(t *testing.T) {
	t.Parallel()

	categories := docprep.Categories()

	require.Len(t, categories, 7)
	assert.Equal(t, docprep.CategoryGettingStarted, categories[0])
	assert.Equal(t, docprep.CategoryTroubleshooting, categories[6])
	for i, c := range categories {
		assert.Equal(t, i, c.Rank())
	}
	assert.Equal(t, 7, docprep.Category("misc").Rank())
	assert.False(t, docprep.Category("misc").Valid())
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	c, ok := docprep.ParseCategory("  API_Reference\n")
	assert.True(t, ok)
	assert.Equal(t, docprep.CategoryAPIReference, c)

	_, ok = docprep.ParseCategory("The category is concepts")
	assert.False(t, ok)

	_, ok = docprep.ParseCategory("")
	assert.False(t, ok)
}

func TestCategoryRules_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, docprep.DefaultCategoryRules().Validate())

	err := docprep.CategoryRules{{Category: "faq", Keywords: []string{"faq"}}}.Validate()
	require.Error(t, err)
	assert.Equal(t, docprep.EINVALID, docprep.ErrorCode(err))
}
