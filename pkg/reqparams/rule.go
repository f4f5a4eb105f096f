package reqparams

import (
	"errors"
	"regexp"
	"strings"
)

// Wildcard is the rule token that lets undeclared fields through as \raw.
const Wildcard = "{*}"

var ruleRegex = regexp.MustCompile(`^\{(\w+):(.*)\}(?:,(.+))?$`)

// DefaultKind tells what happens when a field is absent from the input.
type DefaultKind uint8

const (
	// DefaultRequired means the rule has no default clause: absence is an error.
	DefaultRequired DefaultKind = iota
	// DefaultNull substitutes nil.
	DefaultNull
	// DefaultOptional leaves the field out of the result.
	DefaultOptional
	// DefaultLiteral substitutes the literal text coerced through the field's type.
	DefaultLiteral
)

func (k DefaultKind) String() string {
	switch k {
	case DefaultNull:
		return "null"
	case DefaultOptional:
		return "optional"
	case DefaultLiteral:
		return "literal"
	default:
		return "required"
	}
}

// Default is the parsed default clause of a rule.
type Default struct {
	Kind DefaultKind
	// Literal is the raw default text, set only for DefaultLiteral
	Literal string
}

// Rule is one parsed {name:pattern}[,default] directive.
type Rule struct {
	Name    string
	Type    Type
	Default Default
	source  string
}

// String returns the rule as it was configured.
func (r Rule) String() string { return r.source }

// ParseRule parses a single rule string. The wildcard token is not a rule and
// is rejected here; NewRuleSet handles it. Literal defaults are checked
// against the rule's type so that a bad default fails at construction.
func ParseRule(s string) (Rule, error) {
	m := ruleRegex.FindStringSubmatch(s)
	if m == nil || m[1] == "" || m[2] == "" {
		return Rule{}, &ConfigError{Rule: s, Err: ErrMalformedRule}
	}

	typ, err := ParseType(m[2])
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			cfgErr.Rule = s
		}
		return Rule{}, err
	}

	rule := Rule{
		Name:    m[1],
		Type:    typ,
		Default: parseDefault(m[3]),
		source:  s,
	}

	if rule.Default.Kind == DefaultLiteral {
		if _, err := typ.Coerce(rule.Name, rule.Default.Literal); err != nil {
			return Rule{}, &ConfigError{Rule: s, Err: ErrInvalidDefault, Cause: err}
		}
	}

	return rule, nil
}

func parseDefault(text string) Default {
	switch {
	case text == "":
		return Default{Kind: DefaultRequired}
	case strings.EqualFold(text, "null"):
		return Default{Kind: DefaultNull}
	case strings.EqualFold(text, "optional"), strings.EqualFold(text, `\optional`):
		return Default{Kind: DefaultOptional}
	default:
		return Default{Kind: DefaultLiteral, Literal: text}
	}
}

// resolve produces the value substituted for an absent field. The literal is
// coerced on every call. set is false when nothing must be written.
func (r Rule) resolve() (value any, set bool, err error) {
	switch r.Default.Kind {
	case DefaultNull:
		return nil, true, nil
	case DefaultOptional:
		return nil, false, nil
	case DefaultLiteral:
		v, err := r.Type.Coerce(r.Name, r.Default.Literal)
		if err != nil {
			return nil, false, &ValidationError{Kind: ErrInvalidParameterValue, Field: r.Name, Value: r.Default.Literal, Cause: err}
		}
		return v, true, nil
	default:
		return nil, false, &ValidationError{Kind: ErrMissingParameter, Field: r.Name}
	}
}

// RuleSet is an ordered list of rules plus the wildcard flag.
type RuleSet struct {
	Rules    []Rule
	AllowAny bool
}

// NewRuleSet parses every rule string, folding the wildcard token into
// AllowAny. The first malformed rule aborts with a *ConfigError.
func NewRuleSet(rules ...string) (RuleSet, error) {
	set := RuleSet{Rules: make([]Rule, 0, len(rules))}
	for _, s := range rules {
		if s == Wildcard {
			set.AllowAny = true
			continue
		}
		rule, err := ParseRule(s)
		if err != nil {
			return RuleSet{}, err
		}
		set.Rules = append(set.Rules, rule)
	}
	return set, nil
}

// Types returns the field to type table. A field declared more than once
// takes the type of its last declaration.
func (rs RuleSet) Types() map[string]Type {
	types := make(map[string]Type, len(rs.Rules))
	for _, r := range rs.Rules {
		types[r.Name] = r.Type
	}
	return types
}
