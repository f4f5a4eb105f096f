// Package reqparams validates and coerces untyped, string-keyed parameter
// sets (query strings, request bodies, header maps) against a compact
// declarative rule language.
//
// # Rules
//
// Each rule names one field, its type and an optional default:
//
//	{name:pattern}[,default]
//
// The pattern is a type keyword or a regular expression that values must
// match in full:
//
//	\boolean        true, TRUE, 1 / false, FALSE, 0        -> bool
//	\int            optional sign, digits                  -> int
//	\float          decimal or scientific notation         -> float64
//	\email          bare local@domain address              -> string
//	\url            absolute URL                           -> string
//	\domain         bare hostname                          -> string
//	\date           see DateLayouts                        -> "YYYY-MM-DD HH:MM:SS"
//	\timezone       IANA name, UTC/GMT/Z, +hh:mm           -> canonical name
//	\language       empty or two letters                   -> uppercased
//	\nationality    empty or two letters                   -> uppercased
//	\country        empty or two letters                   -> uppercased
//	\currency       empty or three letters/digits          -> uppercased
//	\bitcoinaddress legacy base58 address                  -> uppercased
//	\base64json     base64 of a JSON document              -> json.RawMessage
//	\raw            anything, unchanged
//	other           ^(?:other)$, string values only        -> string
//
// The default clause decides what happens when the field is absent:
//
//	(none)      the field is required
//	null        the field is set to nil
//	optional    the field is left out of the result
//	anything    the literal, coerced through the field's type
//
// The token {*} lets undeclared fields through as \raw.
//
// # Usage
//
//	v, err := reqparams.New([]string{
//	    `{page:\int},1`,
//	    `{tag:[a-z]+},optional`,
//	    `{since:\date},null`,
//	}, reqparams.WithName("query"))
//	if err != nil {
//	    return err // *ConfigError: the rules themselves are wrong
//	}
//
//	params, err := v.Validate(map[string]any{"tag": []any{"go", "web"}})
//	// params: {page: 1, tag: ["go", "web"], since: nil}
//
// A key supplied once yields a scalar; a key supplied several times yields
// []any in input order.
//
// # Errors
//
// Configuration problems are *ConfigError values wrapping ErrMalformedRule,
// ErrInvalidPattern or ErrInvalidDefault and are reported by New. Input
// problems are *ValidationError values whose Kind is ErrMissingParameter,
// ErrUnrecognizedParameter, ErrInvalidParameterValue or
// ErrInvalidParameterType. A failed validation returns no partial result.
//
// # Sharing results
//
// Validators hold no mutable state. Results travel with the request through
// WithParams and FromContext, keyed by the validator name; Merge combines
// several sets and refuses overlapping keys.
package reqparams
