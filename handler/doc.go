// Package handler wires reqparams validators into net/http as middleware.
//
// Each middleware extracts one parameter source with pkg/binder, validates it
// and publishes the result on the request context under the validator name.
// Handlers read it back with Params or reqparams.FromContext:
//
//	query := reqparams.MustNew([]string{`{page:\int},1`}, reqparams.WithName("query"))
//	body := reqparams.MustNew([]string{`{title:.+}`}, reqparams.WithName("body"))
//
//	r := chi.NewRouter()
//	r.With(handler.Query(query), handler.Body(body)).Post("/posts/{id}",
//		func(w http.ResponseWriter, r *http.Request) {
//			args, err := handler.Args(r, "query", "body") // id, page, title
//			...
//		})
//
// Requests that fail extraction or validation never reach the next handler.
// The error goes to an ErrorHandler; the default one logs it and answers with
// a JSON error body and the status chosen by ClassifyError:
//
//   - 400 for validation errors and malformed query strings or bodies
//   - 413 for bodies over the binder size limit
//   - 415 for unsupported body media types
//   - 500 for anything else
package handler
