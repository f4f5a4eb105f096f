package reqparams

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/paramkit/pkg/logger"
)

// Validator checks raw parameter maps against a compiled rule set.
// It holds no per-call state and is safe for concurrent use.
type Validator struct {
	name  string
	rules RuleSet
	types map[string]Type
	log   *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithName sets the identity under which results are published to a request
// context. It defaults to the comma-joined rule strings.
func WithName(name string) Option {
	return func(v *Validator) {
		if name != "" {
			v.name = name
		}
	}
}

// WithLogger sets the logger for validation outcomes. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.log = l
		}
	}
}

// New compiles rules into a Validator. Each rule is either Wildcard or
// "{name:pattern}[,default]". A rule that does not compile yields a
// *ConfigError; nothing is deferred to validation time.
func New(rules []string, opts ...Option) (*Validator, error) {
	set, err := NewRuleSet(rules...)
	if err != nil {
		return nil, err
	}

	v := &Validator{
		name:  strings.Join(rules, ","),
		rules: set,
		types: set.Types(),
		log:   logger.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// MustNew is like New but panics on a configuration error.
func MustNew(rules []string, opts ...Option) *Validator {
	v, err := New(rules, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Name returns the identity used with WithParams and FromContext.
func (v *Validator) Name() string { return v.name }

// Rules returns the compiled rule set.
func (v *Validator) Rules() RuleSet {
	return RuleSet{Rules: slices.Clone(v.rules.Rules), AllowAny: v.rules.AllowAny}
}

// Validate is ValidateContext with a background context.
func (v *Validator) Validate(raw map[string]any) (Params, error) {
	return v.ValidateContext(context.Background(), raw)
}

// ValidateContext validates and coerces raw. Values may be nil, a scalar, or
// a []any / []string of scalars for repeated keys. The context is used for
// logging only; validation never blocks.
//
// Absent fields receive their rule's default. Every element of every present
// field is coerced by its type; "null", "NULL" and nil pass through as nil.
// A key with one element yields a scalar, more than one yields []any in input
// order. The first failure aborts the whole call with a *ValidationError and
// no partial result.
func (v *Validator) ValidateContext(ctx context.Context, raw map[string]any) (Params, error) {
	out := make(map[string]any, len(raw)+len(v.rules.Rules))

	// sorted so that the reported error is stable for the same input
	keys := slices.Sorted(maps.Keys(raw))

	// unknown keys are reported before missing ones
	if !v.rules.AllowAny {
		for _, key := range keys {
			if _, known := v.types[key]; !known {
				return Params{}, v.reject(ctx, &ValidationError{Kind: ErrUnrecognizedParameter, Field: key})
			}
		}
	}

	for _, rule := range v.rules.Rules {
		if _, present := raw[rule.Name]; present {
			continue
		}
		value, set, err := rule.resolve()
		if err != nil {
			return Params{}, v.reject(ctx, err)
		}
		if set {
			out[rule.Name] = value
		}
	}

	for _, key := range keys {
		typ, known := v.types[key]
		if !known {
			typ = Raw
		}

		elems := normalize(raw[key])
		result := make([]any, len(elems))
		for i, elem := range elems {
			if isNull(elem) {
				result[i] = nil
				continue
			}
			coerced, err := typ.Coerce(key, elem)
			if err != nil {
				return Params{}, v.reject(ctx, elementError(key, elem, err))
			}
			result[i] = coerced
		}

		if len(result) == 1 {
			out[key] = result[0]
		} else {
			out[key] = result
		}
	}

	v.log.DebugContext(ctx, "parameters validated",
		logger.Component("reqparams"),
		logger.Validator(v.name),
		slog.Int("count", len(out)),
	)
	return newParams(out), nil
}

func (v *Validator) reject(ctx context.Context, err error) error {
	attrs := []any{
		logger.Component("reqparams"),
		logger.Validator(v.name),
		logger.Error(err),
	}
	if verr, ok := AsValidationError(err); ok {
		attrs = append(attrs, logger.Field(verr.Field))
	}
	v.log.WarnContext(ctx, "parameters rejected", attrs...)
	return err
}

func normalize(value any) []any {
	switch x := value.(type) {
	case nil:
		return []any{nil}
	case []any:
		return x
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out
	default:
		return []any{x}
	}
}

func isNull(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == "null" || x == "NULL"
	default:
		return false
	}
}

func elementError(field string, value any, err error) *ValidationError {
	if errors.Is(err, ErrInvalidParameterType) {
		return &ValidationError{Kind: ErrInvalidParameterType, Field: field, Value: value}
	}
	return &ValidationError{Kind: ErrInvalidParameterValue, Field: field, Value: value, Cause: err}
}
