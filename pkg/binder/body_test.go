package binder_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramkit/pkg/binder"
)

func newBodyRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestBody(t *testing.T) {
	t.Parallel()

	t.Run("no body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		got, err := binder.Body(req)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("json object", func(t *testing.T) {
		t.Parallel()

		req := newBodyRequest(`{"name":"John","age":30,"tags":["a","b"],"meta":{"k":true}}`, "application/json; charset=utf-8")
		got, err := binder.Body(req)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"name": "John",
			"age":  json.Number("30"),
			"tags": []any{"a", "b"},
			"meta": map[string]any{"k": true},
		}, got)
	})

	t.Run("urlencoded form", func(t *testing.T) {
		t.Parallel()

		req := newBodyRequest("name=John&role=admin&role=owner", "application/x-www-form-urlencoded")
		got, err := binder.Body(req)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "John", "role": []any{"admin", "owner"}}, got)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()

		_, err := binder.Body(newBodyRequest("<a/>", "application/xml"))
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("body without content type", func(t *testing.T) {
		t.Parallel()

		_, err := binder.Body(newBodyRequest("data", ""))
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    map[string]any
		wantErr error
	}{
		{name: "empty body", body: "", want: map[string]any{}},
		{name: "whitespace body", body: "  \n", want: map[string]any{}},
		{name: "null", body: "null", want: map[string]any{}},
		{name: "large integer kept exact", body: `{"id":9007199254740993}`, want: map[string]any{"id": json.Number("9007199254740993")}},
		{name: "null member", body: `{"a":null}`, want: map[string]any{"a": nil}},
		{name: "array document", body: `[1,2]`, wantErr: binder.ErrFailedToParseJSON},
		{name: "string document", body: `"x"`, wantErr: binder.ErrFailedToParseJSON},
		{name: "malformed", body: `{"a":`, wantErr: binder.ErrFailedToParseJSON},
		{name: "trailing data", body: `{"a":1}{"b":2}`, wantErr: binder.ErrFailedToParseJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := binder.JSON(newBodyRequest(tt.body, "application/json"))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()

		body := `{"a":"` + strings.Repeat("x", binder.DefaultMaxJSONSize) + `"}`
		_, err := binder.JSON(newBodyRequest(body, "application/json"))
		assert.ErrorIs(t, err, binder.ErrBodyTooLarge)
	})
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("title", "Hello"))
		require.NoError(t, mw.WriteField("tag", "a"))
		require.NoError(t, mw.WriteField("tag", "b"))
		fw, err := mw.CreateFormFile("file", "doc.txt")
		require.NoError(t, err)
		_, err = fw.Write([]byte("content"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		got, err := binder.Form(req)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"title": "Hello", "tag": []any{"a", "b"}}, got)
	})

	t.Run("query values are not body values", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/test?page=2", strings.NewReader("name=John"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		got, err := binder.Form(req)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "John"}, got)
	})

	t.Run("missing boundary", func(t *testing.T) {
		t.Parallel()

		_, err := binder.Form(newBodyRequest("x", "multipart/form-data"))
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})

	t.Run("wrong media type", func(t *testing.T) {
		t.Parallel()

		_, err := binder.Form(newBodyRequest("{}", "application/json"))
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})
}
