package binder

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RouteParams returns the URL parameters of the chi route that matched r.
// Outside a chi router it returns an empty map.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
//		params := binder.RouteParams(r) // {"id": "42"}
//	})
func RouteParams(r *http.Request) map[string]any {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		if i < len(rctx.URLParams.Values) {
			out[key] = rctx.URLParams.Values[i]
		}
	}
	return out
}
