package reqparams

import (
	"encoding/json"
	"maps"
	"slices"
)

// Params is the immutable result of one successful validation. Values are
// nil, bool, int, float64, string, json.RawMessage, any value passed through
// as \raw, or []any when a key was supplied more than once.
type Params struct {
	values map[string]any
}

func newParams(values map[string]any) Params {
	return Params{values: values}
}

// Get returns the value for key, or nil when absent. Use Lookup to tell an
// absent key from a nil value.
func (p Params) Get(key string) any {
	v, _ := p.Lookup(key)
	return v
}

// Lookup returns the value for key and whether the key is present.
func (p Params) Lookup(key string) (any, bool) {
	v, ok := p.values[key]
	if !ok {
		return nil, false
	}
	return cloneValue(v), true
}

// Has reports whether key is present, including keys holding nil.
func (p Params) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Len returns the number of keys.
func (p Params) Len() int { return len(p.values) }

// Keys returns the keys in sorted order.
func (p Params) Keys() []string {
	return slices.Sorted(maps.Keys(p.values))
}

// Map returns a copy of the underlying mapping.
func (p Params) Map() map[string]any {
	out := make(map[string]any, len(p.values))
	for k, v := range p.values {
		out[k] = cloneValue(v)
	}
	return out
}

// MarshalJSON encodes the parameters as a JSON object.
func (p Params) MarshalJSON() ([]byte, error) {
	if p.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p.values)
}

// Value returns the value for key asserted to T. ok is false when the key is
// absent or holds another type.
//
// Example:
//
//	page, ok := reqparams.Value[int](params, "page")
func Value[T any](p Params, key string) (T, bool) {
	v, ok := p.Lookup(key)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = cloneValue(x[i])
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = cloneValue(val)
		}
		return out
	case json.RawMessage:
		return slices.Clone(x)
	default:
		return v
	}
}
