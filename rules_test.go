package docprep_test

import (
	"testing"

	"github.com/fwojciec/docprep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCleaningRules(t *testing.T) {
	t.Parallel()

	for _, rule := range docprep.DefaultCleaningRules() {
		require.NoError(t, rule.Validate(), rule.Pattern)
	}
}

func TestCleaningRule_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule docprep.CleaningRule
	}{
		{name: "unknown scope", rule: docprep.CleaningRule{Scope: "body", Pattern: "x"}},
		{name: "empty pattern", rule: docprep.CleaningRule{Scope: docprep.ScopeHeader}},
		{name: "bad regexp", rule: docprep.CleaningRule{Scope: docprep.ScopeFooter, Pattern: "(unclosed"}},
		{name: "lookahead", rule: docprep.CleaningRule{Scope: docprep.ScopeNavigation, Pattern: "a(?=b)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.rule.Validate()

			require.Error(t, err)
			assert.Equal(t, docprep.EINVALID, docprep.ErrorCode(err))
		})
	}
}
