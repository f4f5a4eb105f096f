package reqparams

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrMalformedRule indicates a rule string that does not follow the {name:pattern}[,default] grammar.
	ErrMalformedRule = errors.New("malformed rule")

	// ErrInvalidPattern indicates a type pattern that is neither a keyword nor a valid regular expression.
	ErrInvalidPattern = errors.New("invalid type pattern")

	// ErrInvalidDefault indicates a literal default that its own type rejects.
	ErrInvalidDefault = errors.New("invalid default value")

	// ErrMissingParameter indicates a required field absent from the input.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrUnrecognizedParameter indicates an input field with no rule while the wildcard is off.
	ErrUnrecognizedParameter = errors.New("unrecognized parameter")

	// ErrInvalidParameterValue indicates a value rejected by its field's type.
	ErrInvalidParameterValue = errors.New("invalid parameter value")

	// ErrInvalidParameterType indicates a non-string value for a regex-typed field,
	// or a nested value for any field not typed \raw.
	ErrInvalidParameterType = errors.New("invalid parameter type")

	// ErrParameterCollision indicates two parameter sets sharing a key during a merge.
	ErrParameterCollision = errors.New("parameter collision")

	// ErrUnknownRuleSet indicates a lookup of a rule set name absent from a rule file.
	ErrUnknownRuleSet = errors.New("unknown rule set")

	// ErrInvalidRuleFile indicates a rule file that cannot be decoded.
	ErrInvalidRuleFile = errors.New("invalid rule file")
)

// ConfigError reports a rule that cannot be compiled. It is a programming
// error: validators refuse to be constructed from such rules.
type ConfigError struct {
	// Rule is the offending rule string as configured
	Rule string
	// Err is one of ErrMalformedRule, ErrInvalidPattern or ErrInvalidDefault
	Err error
	// Cause is the underlying error, if any
	Cause error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%s: %q", e.Err, e.Rule)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// ValidationError reports input rejected by a validator. Kind is one of
// ErrMissingParameter, ErrUnrecognizedParameter, ErrInvalidParameterValue or
// ErrInvalidParameterType, so errors.Is works against the sentinels.
type ValidationError struct {
	Kind  error
	Field string
	// Value is the offending raw element; nil for missing and unrecognized parameters
	Value any
	// Cause carries the failed predicate (usually validator.ValidationErrors)
	Cause error
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrInvalidParameterValue:
		return fmt.Sprintf("%s for key: %s (%v)", e.Kind, e.Field, e.Value)
	case ErrInvalidParameterType:
		return fmt.Sprintf("%s for key: %s (use \\raw)", e.Kind, e.Field)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	}
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// StatusCode reports the HTTP status a transport should answer with.
func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

// IsConfigError reports whether err is, or wraps, a ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// AsValidationError extracts a ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
