package reqparams

import (
	"context"
	"fmt"
)

type contextKey struct{ name string }

// WithParams publishes p under the validator name in a derived context.
// A later publish under the same name replaces the earlier one.
func WithParams(ctx context.Context, name string, p Params) context.Context {
	return context.WithValue(ctx, contextKey{name}, p)
}

// FromContext returns the parameters published under name. Before any
// successful validation it returns an empty set.
func FromContext(ctx context.Context, name string) Params {
	if ctx == nil {
		return Params{}
	}
	p, _ := ctx.Value(contextKey{name}).(Params)
	return p
}

// Merge combines several parameter sets. A key present in more than one set
// is a caller error and yields ErrParameterCollision.
func Merge(sets ...Params) (Params, error) {
	size := 0
	for _, s := range sets {
		size += s.Len()
	}

	out := make(map[string]any, size)
	for _, s := range sets {
		for k, v := range s.values {
			if _, exists := out[k]; exists {
				return Params{}, fmt.Errorf("%w: %s", ErrParameterCollision, k)
			}
			out[k] = v
		}
	}
	return newParams(out), nil
}
