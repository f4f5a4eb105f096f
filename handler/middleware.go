package handler

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/dmitrymomot/paramkit/pkg/binder"
	"github.com/dmitrymomot/paramkit/pkg/reqparams"
)

// Parameter sources, used to tag errors.
const (
	SourceQuery   = "query"
	SourceBody    = "body"
	SourceHeaders = "headers"
)

type config struct {
	log          *slog.Logger
	errorHandler ErrorHandler
}

// Option configures the validation middleware.
type Option func(*config)

// WithErrorHandler replaces the default JSON error handler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithLogger sets the logger used by the default error handler.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

type extractor func(r *http.Request) (map[string]any, error)

// Query validates the query string with v.
//
// Example:
//
//	v := reqparams.MustNew([]string{`{page:\int},1`}, reqparams.WithName("query"))
//	r.With(handler.Query(v)).Get("/items", func(w http.ResponseWriter, r *http.Request) {
//		page, _ := reqparams.Value[int](reqparams.FromContext(r.Context(), "query"), "page")
//	})
func Query(v *reqparams.Validator, opts ...Option) func(http.Handler) http.Handler {
	return middleware(v, SourceQuery, binder.Query, opts)
}

// Body validates the parsed request body (JSON or form) with v.
func Body(v *reqparams.Validator, opts ...Option) func(http.Handler) http.Handler {
	return middleware(v, SourceBody, binder.Body, opts)
}

// Headers validates the request headers with v. Build v with NewHeaders so
// that the headers every client sends do not need declaring.
func Headers(v *reqparams.Validator, opts ...Option) func(http.Handler) http.Handler {
	return middleware(v, SourceHeaders, func(r *http.Request) (map[string]any, error) {
		return binder.Headers(r), nil
	}, opts)
}

// NewHeaders builds a header validator. The wildcard is added when rules do
// not contain it.
func NewHeaders(rules []string, opts ...reqparams.Option) (*reqparams.Validator, error) {
	if !slices.Contains(rules, reqparams.Wildcard) {
		rules = append(slices.Clone(rules), reqparams.Wildcard)
	}
	return reqparams.New(rules, opts...)
}

func middleware(v *reqparams.Validator, source string, extract extractor, opts []Option) func(http.Handler) http.Handler {
	cfg := &config{log: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.errorHandler == nil {
		cfg.errorHandler = NewErrorHandler(cfg.log)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := extract(r)
			if err != nil {
				cfg.errorHandler(w, r, &SourceError{Source: source, Err: err})
				return
			}

			params, err := v.ValidateContext(r.Context(), raw)
			if err != nil {
				cfg.errorHandler(w, r, &SourceError{Source: source, Err: err})
				return
			}

			next.ServeHTTP(w, r.WithContext(reqparams.WithParams(r.Context(), v.Name(), params)))
		})
	}
}

// RouteName is the set name under which Args files route parameters.
const RouteName = "route"

var routeValidator = reqparams.MustNew([]string{reqparams.Wildcard}, reqparams.WithName(RouteName))

// Args merges the chi route parameters of r with the parameter sets
// published under names. A key present in two sources is an error.
func Args(r *http.Request, names ...string) (reqparams.Params, error) {
	route, err := routeValidator.ValidateContext(r.Context(), binder.RouteParams(r))
	if err != nil {
		return reqparams.Params{}, err
	}

	sets := make([]reqparams.Params, 0, len(names)+1)
	sets = append(sets, route)
	for _, name := range names {
		sets = append(sets, reqparams.FromContext(r.Context(), name))
	}
	return reqparams.Merge(sets...)
}

// Params returns the set published under name for r.
func Params(r *http.Request, name string) reqparams.Params {
	return reqparams.FromContext(r.Context(), name)
}
