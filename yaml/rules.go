package yaml

import (
	"errors"
	"io"

	"github.com/fwojciec/docprep"
	"gopkg.in/yaml.v3"
)

// LoadRuleSet decodes a rules file of the form
//
//	cleaning:
//	  - scope: footer
//	    pattern: 'Edit this page'
//	categories:
//	  - category: api_reference
//	    keywords: [api, reference]
//
// Every rule is validated.
func LoadRuleSet(r io.Reader) (*docprep.RuleSet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var set docprep.RuleSet
	if err := dec.Decode(&set); err != nil && !errors.Is(err, io.EOF) {
		return nil, docprep.Errorf(docprep.EINVALID, "parse rules: %v", err)
	}

	for _, rule := range set.Cleaning {
		if err := rule.Validate(); err != nil {
			return nil, err
		}
	}
	if err := set.Categories.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}
