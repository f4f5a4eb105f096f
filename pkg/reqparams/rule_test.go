package reqparams_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramkit/pkg/reqparams"
)

func TestParseRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		rule        string
		wantName    string
		wantKind    reqparams.Kind
		wantPattern string
		wantDefault reqparams.Default
	}{
		{
			name:        "required int",
			rule:        `{foo:\int}`,
			wantName:    "foo",
			wantKind:    reqparams.KindInt,
			wantPattern: `\int`,
			wantDefault: reqparams.Default{Kind: reqparams.DefaultRequired},
		},
		{
			name:        "literal default",
			rule:        `{foo:\boolean},true`,
			wantName:    "foo",
			wantKind:    reqparams.KindBoolean,
			wantPattern: `\boolean`,
			wantDefault: reqparams.Default{Kind: reqparams.DefaultLiteral, Literal: "true"},
		},
		{
			name:        "null default",
			rule:        `{since:\date},null`,
			wantName:    "since",
			wantKind:    reqparams.KindDate,
			wantPattern: `\date`,
			wantDefault: reqparams.Default{Kind: reqparams.DefaultNull},
		},
		{
			name:        "upper case null",
			rule:        `{since:\date},NULL`,
			wantName:    "since",
			wantKind:    reqparams.KindDate,
			wantPattern: `\date`,
			wantDefault: reqparams.Default{Kind: reqparams.DefaultNull},
		},
		{
			name:        "optional default",
			rule:        `{tag:[a-z]+},optional`,
			wantName:    "tag",
			wantKind:    reqparams.KindPattern,
			wantPattern: `[a-z]+`,
			wantDefault: reqparams.Default{Kind: reqparams.DefaultOptional},
		},
		{
			name:        "backslash optional default",
			rule:        `{tag:[a-z]+},\Optional`,
			wantName:    "tag",
			wantKind:    reqparams.KindPattern,
			wantPattern: `[a-z]+`,
			wantDefault: reqparams.Default{Kind: reqparams.DefaultOptional},
		},
		{
			name:        "pattern containing braces",
			rule:        `{code:[A-Z]{3}},EUR`,
			wantName:    "code",
			wantKind:    reqparams.KindPattern,
			wantPattern: `[A-Z]{3}`,
			wantDefault: reqparams.Default{Kind: reqparams.DefaultLiteral, Literal: "EUR"},
		},
		{
			name:        "default containing commas",
			rule:        `{note:.*},a,b`,
			wantName:    "note",
			wantKind:    reqparams.KindPattern,
			wantPattern: `.*`,
			wantDefault: reqparams.Default{Kind: reqparams.DefaultLiteral, Literal: "a,b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rule, err := reqparams.ParseRule(tt.rule)
			require.NoError(t, err)

			assert.Equal(t, tt.wantName, rule.Name)
			assert.Equal(t, tt.wantKind, rule.Type.Kind())
			assert.Equal(t, tt.wantPattern, rule.Type.String())
			assert.Equal(t, tt.wantDefault, rule.Default)
			assert.Equal(t, tt.rule, rule.String())
		})
	}
}

func TestParseRuleErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rule    string
		wantErr error
	}{
		{name: "empty", rule: "", wantErr: reqparams.ErrMalformedRule},
		{name: "no braces", rule: "foo", wantErr: reqparams.ErrMalformedRule},
		{name: "no type", rule: "{foo}", wantErr: reqparams.ErrMalformedRule},
		{name: "empty name", rule: `{:\int}`, wantErr: reqparams.ErrMalformedRule},
		{name: "empty pattern", rule: "{foo:}", wantErr: reqparams.ErrMalformedRule},
		{name: "name with dash", rule: `{fo-o:\int}`, wantErr: reqparams.ErrMalformedRule},
		{name: "dangling comma", rule: `{foo:\int},`, wantErr: reqparams.ErrMalformedRule},
		{name: "wildcard", rule: reqparams.Wildcard, wantErr: reqparams.ErrMalformedRule},
		{name: "broken regex", rule: "{foo:[a-}", wantErr: reqparams.ErrInvalidPattern},
		{name: "int default", rule: `{foo:\int},abc`, wantErr: reqparams.ErrInvalidDefault},
		{name: "boolean default", rule: `{foo:\boolean},yes`, wantErr: reqparams.ErrInvalidDefault},
		{name: "pattern default", rule: `{foo:[0-9]+},abc`, wantErr: reqparams.ErrInvalidDefault},
		{name: "date default", rule: `{foo:\date},tomorrow`, wantErr: reqparams.ErrInvalidDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := reqparams.ParseRule(tt.rule)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, reqparams.IsConfigError(err))

			var cfgErr *reqparams.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.rule, cfgErr.Rule)
		})
	}
}

func TestNewRuleSet(t *testing.T) {
	t.Parallel()

	t.Run("wildcard sets allow any", func(t *testing.T) {
		t.Parallel()

		set, err := reqparams.NewRuleSet(reqparams.Wildcard, `{a:\int}`)
		require.NoError(t, err)
		assert.True(t, set.AllowAny)
		require.Len(t, set.Rules, 1)
		assert.Equal(t, "a", set.Rules[0].Name)
	})

	t.Run("empty set", func(t *testing.T) {
		t.Parallel()

		set, err := reqparams.NewRuleSet()
		require.NoError(t, err)
		assert.False(t, set.AllowAny)
		assert.Empty(t, set.Rules)
	})

	t.Run("last declaration decides the type", func(t *testing.T) {
		t.Parallel()

		set, err := reqparams.NewRuleSet(`{a:\int}`, `{a:\boolean}`)
		require.NoError(t, err)
		assert.Len(t, set.Rules, 2)
		assert.Equal(t, reqparams.KindBoolean, set.Types()["a"].Kind())
	})

	t.Run("first bad rule aborts", func(t *testing.T) {
		t.Parallel()

		_, err := reqparams.NewRuleSet(`{a:\int}`, "{b}", "{c:[}")
		require.Error(t, err)
		assert.ErrorIs(t, err, reqparams.ErrMalformedRule)
		assert.Contains(t, err.Error(), `"{b}"`)
	})
}

func TestParseType(t *testing.T) {
	t.Parallel()

	t.Run("keywords", func(t *testing.T) {
		t.Parallel()

		typ, err := reqparams.ParseType(`\currency`)
		require.NoError(t, err)
		assert.Equal(t, reqparams.KindCurrency, typ.Kind())
		assert.Equal(t, `\currency`, typ.Kind().String())
	})

	t.Run("unknown keyword is a regex", func(t *testing.T) {
		t.Parallel()

		typ, err := reqparams.ParseType(`\d+`)
		require.NoError(t, err)
		assert.Equal(t, reqparams.KindPattern, typ.Kind())
		assert.Equal(t, "pattern", typ.Kind().String())
	})

	t.Run("empty pattern", func(t *testing.T) {
		t.Parallel()

		_, err := reqparams.ParseType("")
		assert.ErrorIs(t, err, reqparams.ErrInvalidPattern)
	})
}

func TestDefaultKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "required", reqparams.DefaultRequired.String())
	assert.Equal(t, "null", reqparams.DefaultNull.String())
	assert.Equal(t, "optional", reqparams.DefaultOptional.String())
	assert.Equal(t, "literal", reqparams.DefaultLiteral.String())
}
