package reqparams

import (
	"regexp"
)

// Kind identifies a built-in type keyword, or KindPattern for a field typed
// by an arbitrary regular expression.
type Kind uint8

const (
	KindPattern Kind = iota
	KindRaw
	KindBoolean
	KindInt
	KindFloat
	KindEmail
	KindURL
	KindDomain
	KindDate
	KindTimezone
	KindLanguage
	KindNationality
	KindCountry
	KindCurrency
	KindBitcoinAddress
	KindBase64JSON
)

var keywords = map[string]Kind{
	`\raw`:            KindRaw,
	`\boolean`:        KindBoolean,
	`\int`:            KindInt,
	`\float`:          KindFloat,
	`\email`:          KindEmail,
	`\url`:            KindURL,
	`\domain`:         KindDomain,
	`\date`:           KindDate,
	`\timezone`:       KindTimezone,
	`\language`:       KindLanguage,
	`\nationality`:    KindNationality,
	`\country`:        KindCountry,
	`\currency`:       KindCurrency,
	`\bitcoinaddress`: KindBitcoinAddress,
	`\base64json`:     KindBase64JSON,
}

func (k Kind) String() string {
	for kw, kind := range keywords {
		if kind == k {
			return kw
		}
	}
	return "pattern"
}

// Type is a compiled type pattern.
type Type struct {
	kind   Kind
	source string
	re     *regexp.Regexp
}

// Raw is the type given to fields accepted through the wildcard.
var Raw = Type{kind: KindRaw, source: `\raw`}

// ParseType compiles a type pattern. Keywords map to their Kind; anything else
// is a regular expression that values must match in full.
func ParseType(pattern string) (Type, error) {
	if pattern == "" {
		return Type{}, &ConfigError{Rule: pattern, Err: ErrInvalidPattern}
	}
	if kind, ok := keywords[pattern]; ok {
		return Type{kind: kind, source: pattern}, nil
	}

	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return Type{}, &ConfigError{Rule: pattern, Err: ErrInvalidPattern, Cause: err}
	}
	return Type{kind: KindPattern, source: pattern, re: re}, nil
}

// Kind returns the type's kind.
func (t Type) Kind() Kind { return t.kind }

// String returns the pattern as configured.
func (t Type) String() string { return t.source }
