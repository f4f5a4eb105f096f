package validator

import "regexp"

// MatchesPattern validates value against a precompiled expression.
// Anchoring is the caller's responsibility. A nil expression never matches.
func MatchesPattern(field, value string, re *regexp.Regexp) Rule {
	pattern := ""
	if re != nil {
		pattern = re.String()
	}
	return Rule{
		Check: func() bool {
			return re != nil && re.MatchString(value)
		},
		Error: newError(field, "must match pattern "+pattern, "validation.regex_pattern", map[string]any{
			"pattern": pattern,
		}),
	}
}
