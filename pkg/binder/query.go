package binder

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Query extracts the raw query string parameters of r. See ParseQuery.
func Query(r *http.Request) (map[string]any, error) {
	return ParseQuery(r.URL.RawQuery)
}

// ParseQuery splits a raw query string into parameters.
//
// Pairs are separated by '&' and empty pairs are skipped. The first '=' of a
// pair separates name and value; the value is percent-decoded with '+' read as
// a space, the name is kept as written. A pair without '=' (or starting with
// it) is a name with a nil value. A name given more than once yields []any in
// order of appearance; otherwise the value is a single element.
//
//	ParseQuery("foo=0&foo=1&flag")  // {"foo": ["0", "1"], "flag": nil}
func ParseQuery(raw string) (map[string]any, error) {
	values := make(map[string][]any)
	for pair := range strings.SplitSeq(raw, "&") {
		if pair == "" {
			continue
		}

		name, value := pair, any(nil)
		if i := strings.IndexByte(pair, '='); i > 0 {
			decoded, err := url.QueryUnescape(pair[i+1:])
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrFailedToParseQuery, pair[:i], err)
			}
			name, value = pair[:i], decoded
		}

		values[name] = append(values[name], value)
	}

	out := make(map[string]any, len(values))
	for name, vals := range values {
		out[name] = collapse(vals)
	}
	return out, nil
}

func collapse(vals []any) any {
	if len(vals) == 1 {
		return vals[0]
	}
	return vals
}

func fromValues(values map[string][]string) map[string]any {
	out := make(map[string]any, len(values))
	for name, vals := range values {
		if len(vals) == 1 {
			out[name] = vals[0]
			continue
		}
		list := make([]any, len(vals))
		for i, v := range vals {
			list[i] = v
		}
		out[name] = list
	}
	return out
}
