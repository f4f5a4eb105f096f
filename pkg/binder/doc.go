// Package binder extracts untyped parameter maps from HTTP requests.
//
// Every extractor returns map[string]any where a value is nil, a string, a
// JSON value, or []any when the source carried the same name more than once.
// The maps are meant to be handed to a reqparams.Validator, which owns typing
// and coercion; binder only deals with transport formats.
//
// # Extractors
//
//   - Query(r) / ParseQuery(raw): query string, names kept verbatim, bare
//     names map to nil
//   - Body(r): dispatches on Content-Type to JSON(r) or Form(r); an empty body
//     yields an empty map
//   - JSON(r): a JSON object, numbers as json.Number, limited to
//     DefaultMaxJSONSize bytes
//   - Form(r): urlencoded or multipart body fields; files are ignored
//   - Headers(r): canonical header names, including Host
//   - RouteParams(r): chi URL parameters
//
// # Error Handling
//
// Errors wrap one of the package sentinels so callers can classify them:
//
//   - ErrUnsupportedMediaType: body content type is neither JSON nor a form
//   - ErrMissingContentType: a body was sent without a Content-Type header
//   - ErrFailedToParseJSON: malformed JSON or a non-object document
//   - ErrFailedToParseForm: malformed form data or multipart boundary
//   - ErrFailedToParseQuery: invalid percent-encoding in the query string
//   - ErrBodyTooLarge: JSON body over DefaultMaxJSONSize
package binder
