package binder

import "net/http"

// Headers extracts the request headers keyed by canonical name. The Host
// header, which net/http moves to r.Host, is restored.
func Headers(r *http.Request) map[string]any {
	out := fromValues(r.Header)
	if r.Host != "" {
		if _, ok := out["Host"]; !ok {
			out["Host"] = r.Host
		}
	}
	return out
}
