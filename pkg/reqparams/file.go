package reqparams

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// RuleSets maps a rule set name to its rule strings, as read from a rule file:
//
//	query:
//	  - '{page:\int},1'
//	  - '{tag:[a-z]+},optional'
//	headers:
//	  - '{Authorization:.+},null'
type RuleSets map[string][]string

// DecodeRuleSets reads a YAML rule file. Every set is compiled once so that a
// bad rule is reported while loading rather than on first use.
func DecodeRuleSets(r io.Reader) (RuleSets, error) {
	sets := RuleSets{}
	if err := yaml.NewDecoder(r).Decode(&sets); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRuleFile, err)
	}

	for _, name := range sets.Names() {
		if _, err := NewRuleSet(sets[name]...); err != nil {
			return nil, fmt.Errorf("rule set %s: %w", name, err)
		}
	}
	return sets, nil
}

// Names returns the set names in sorted order.
func (rs RuleSets) Names() []string {
	return slices.Sorted(maps.Keys(rs))
}

// Validator builds the validator for the named set. The set name becomes the
// validator's name unless opts override it.
func (rs RuleSets) Validator(name string, opts ...Option) (*Validator, error) {
	rules, ok := rs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRuleSet, name)
	}
	return New(rules, append([]Option{WithName(name)}, opts...)...)
}
