package reqparams

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/paramkit/pkg/validator"
)

// DateFormat is the normalized output of \date fields.
const DateFormat = "2006-01-02 15:04:05"

// DateLayouts lists the input layouts accepted by \date, tried in order.
// Relative expressions such as "now" are deliberately absent so that the same
// input always normalizes to the same output.
var DateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-1-2T15:04",
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"2006-1-2",
	"2006/1/2 15:04:05",
	"2006/1/2",
	"20060102",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC850,
	time.ANSIC,
	"2 January 2006 15:04:05",
	"2 January 2006 15:04",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

var (
	intRegex    = regexp.MustCompile(`^[+-]?[0-9]+$`)
	floatRegex  = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)
	offsetRegex = regexp.MustCompile(`^([+-])([0-9]{1,2}):?([0-9]{2})$`)

	zoneAliases = map[string]string{
		"UTC":  "UTC",
		"UCT":  "UTC",
		"Z":    "UTC",
		"ZULU": "UTC",
		"GMT":  "GMT",
	}

	// time.LoadLocation reads the zone database on every call
	zoneCache sync.Map

	zoneIndexOnce sync.Once
	zoneIndex     map[string]string
)

// Coerce validates one raw element and converts it to the type's Go value:
// bool for \boolean, int for \int, float64 for \float, json.RawMessage for
// \base64json, a deep copy of the input for \raw and string for everything
// else.
//
// Non-string scalars (bool, integers, floats, json.Number) are rendered to
// their canonical text before checking. Nested values are only accepted by
// \raw, and regex-typed fields accept strings only; both cases return
// ErrInvalidParameterType. Other failures return validator.ValidationErrors.
func (t Type) Coerce(field string, v any) (any, error) {
	switch t.kind {
	case KindRaw:
		return cloneValue(v), nil
	case KindPattern:
		s, ok := v.(string)
		if !ok {
			return nil, ErrInvalidParameterType
		}
		if err := validator.Apply(validator.MatchesPattern(field, s, t.re)); err != nil {
			return nil, err
		}
		return s, nil
	}

	s, ok := scalarText(v)
	if !ok {
		return nil, ErrInvalidParameterType
	}

	switch t.kind {
	case KindBoolean:
		return coerceBool(field, s)
	case KindInt:
		return coerceInt(field, s)
	case KindFloat:
		return coerceFloat(field, s)
	case KindEmail:
		return s, validator.Apply(validator.ValidEmail(field, s))
	case KindURL:
		return s, validator.Apply(validator.ValidURL(field, s))
	case KindDomain:
		return s, validator.Apply(validator.ValidHostname(field, s))
	case KindDate:
		return coerceDate(field, s)
	case KindTimezone:
		return coerceTimezone(field, s)
	case KindLanguage, KindNationality, KindCountry:
		return upper(s), validator.Apply(validator.ValidCountryCode(field, s))
	case KindCurrency:
		return upper(s), validator.Apply(validator.ValidCurrencyFormat(field, s))
	case KindBitcoinAddress:
		return upper(s), validator.Apply(validator.ValidBitcoinAddress(field, s))
	case KindBase64JSON:
		return coerceBase64JSON(field, s)
	default:
		return nil, fmt.Errorf("unhandled type kind %d", t.kind)
	}
}

func scalarText(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case json.Number:
		return x.String(), true
	case int:
		return strconv.FormatInt(int64(x), 10), true
	case int8:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	default:
		return "", false
	}
}

func invalid(field, message, key string) error {
	return validator.ValidationErrors{{
		Field:             field,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: map[string]any{"field": field},
	}}
}

func upper(s string) string {
	// Casers keep state and must not be shared between goroutines
	return cases.Upper(language.Und).String(s)
}

func coerceBool(field, s string) (any, error) {
	switch s {
	case "true", "TRUE", "1":
		return true, nil
	case "false", "FALSE", "0":
		return false, nil
	}
	return nil, invalid(field, "must be true, false, 1 or 0", "validation.boolean")
}

func coerceInt(field, s string) (any, error) {
	if !intRegex.MatchString(s) {
		return nil, invalid(field, "must be an integer", "validation.integer")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, invalid(field, "must be an integer in range", "validation.integer")
	}
	return n, nil
}

func coerceFloat(field, s string) (any, error) {
	if !floatRegex.MatchString(s) {
		return nil, invalid(field, "must be a number", "validation.float")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, invalid(field, "must be a number in range", "validation.float")
	}
	return f, nil
}

// ParseDate parses s with the first matching entry of DateLayouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date string: %s", s)
}

func coerceDate(field, s string) (any, error) {
	t, err := ParseDate(s)
	if err != nil {
		return nil, invalid(field, "must be a valid date", "validation.date")
	}
	return t.Format(DateFormat), nil
}

// CanonicalTimezone resolves a zone identifier, alias or numeric offset to
// its canonical name.
func CanonicalTimezone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "Local" {
		return "", false
	}
	if alias, ok := zoneAliases[strings.ToUpper(s)]; ok {
		return alias, true
	}
	if m := offsetRegex.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes, _ := strconv.Atoi(m[3])
		if hours > 14 || minutes > 59 {
			return "", false
		}
		return fmt.Sprintf("%s%02d:%02d", m[1], hours, minutes), true
	}
	name, ok := canonicalZoneName(s)
	if !ok {
		return "", false
	}
	if _, cached := zoneCache.Load(name); cached {
		return name, true
	}
	if _, err := time.LoadLocation(name); err != nil {
		return "", false
	}
	zoneCache.Store(name, struct{}{})
	return name, true
}

// canonicalZoneName looks a zone identifier up ignoring case and returns the
// spelling used by the tz database.
func canonicalZoneName(s string) (string, bool) {
	zoneIndexOnce.Do(func() {
		zoneIndex = make(map[string]string, len(zoneNames))
		for _, name := range zoneNames {
			zoneIndex[strings.ToLower(name)] = name
		}
	})
	name, ok := zoneIndex[strings.ToLower(s)]
	return name, ok
}

func coerceTimezone(field, s string) (any, error) {
	name, ok := CanonicalTimezone(s)
	if !ok {
		return nil, invalid(field, "must be a known timezone", "validation.timezone")
	}
	return name, nil
}

// coerceBase64JSON accepts any JSON document once decoded, including a bare
// null.
func coerceBase64JSON(field, s string) (any, error) {
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		decoded, err = base64.RawStdEncoding.DecodeString(s)
	}
	if err != nil {
		return nil, invalid(field, "must be base64 encoded", "validation.base64")
	}
	if err := validator.Apply(validator.ValidJSON(field, decoded)); err != nil {
		return nil, err
	}
	return json.RawMessage(decoded), nil
}
