package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// Body extracts the parsed request body as a parameter map, dispatching on
// the Content-Type header to JSON or Form. A request without a body yields an
// empty map.
func Body(r *http.Request) (map[string]any, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("%w: request has a body but no content-type header", ErrMissingContentType)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	switch mediaType {
	case "application/json":
		return JSON(r)
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return Form(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}
