package validator

import "encoding/json"

// ValidJSON validates that data is a single well-formed JSON value.
func ValidJSON(field string, data []byte) Rule {
	return Rule{
		Check: func() bool {
			return len(data) > 0 && json.Valid(data)
		},
		Error: newError(field, "must contain valid JSON", "validation.json", nil),
	}
}
