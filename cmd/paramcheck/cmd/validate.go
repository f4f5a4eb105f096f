package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/paramkit/handler"
	"github.com/dmitrymomot/paramkit/pkg/binder"
)

var errOneSource = errors.New("exactly one of --query, --body or --header is required")

func newValidateCmd(a *app) *cobra.Command {
	var (
		set         string
		rules       []string
		query       string
		body        string
		contentType string
		headers     []string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate one parameter source and print the coerced result as JSON",
		Example: `  paramcheck validate --rule '{foo:\int}' --query 'foo=0&foo=1&foo=2'
  paramcheck validate --set body --body '{"title":"hello"}'
  paramcheck validate --set headers --header 'Authorization: Bearer abc'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, err := selectSource(cmd)
			if err != nil {
				return err
			}
			if set == "" {
				set = source
			}

			v, err := a.validator(set, rules, source)
			if err != nil {
				return err
			}

			req, err := newRequest(cmd.Context(), query, body, contentType, headers)
			if err != nil {
				return err
			}

			var raw map[string]any
			switch source {
			case handler.SourceQuery:
				raw, err = binder.Query(req)
			case handler.SourceBody:
				raw, err = binder.Body(req)
			default:
				raw = binder.Headers(req)
			}
			if err != nil {
				return err
			}

			params, err := v.ValidateContext(cmd.Context(), raw)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(params)
		},
	}

	f := cmd.Flags()
	f.StringVar(&set, "set", "", "rule set from the rule file (default: the source name)")
	f.StringArrayVar(&rules, "rule", nil, "inline rule, repeatable; replaces the rule file")
	f.StringVar(&query, "query", "", "raw query string to validate")
	f.StringVar(&body, "body", "", "request body to validate")
	f.StringVar(&contentType, "content-type", "application/json", "content type of --body")
	f.StringArrayVar(&headers, "header", nil, `header to validate as "Name: value", repeatable`)

	return cmd
}

func selectSource(cmd *cobra.Command) (string, error) {
	var sources []string
	for flag, source := range map[string]string{
		"query":  handler.SourceQuery,
		"body":   handler.SourceBody,
		"header": handler.SourceHeaders,
	} {
		if cmd.Flags().Changed(flag) {
			sources = append(sources, source)
		}
	}
	if len(sources) != 1 {
		return "", errOneSource
	}
	return sources[0], nil
}

func newRequest(ctx context.Context, query, body, contentType string, headers []string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "/", strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = query
	if body != "" {
		req.Header.Set("Content-Type", contentType)
	}

	for _, h := range headers {
		name, value, ok := strings.Cut(h, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("malformed header %q, expected \"Name: value\"", h)
		}
		req.Header.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return req, nil
}
