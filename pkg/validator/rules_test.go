package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramkit/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	t.Parallel()

	t.Run("valid emails", func(t *testing.T) {
		validEmails := []string{
			"test@example.com",
			"user.name@domain.co.uk",
			"user+tag@example.org",
			"1234567890@example.com",
			"_______@example.com",
		}

		for _, email := range validEmails {
			err := validator.Apply(validator.ValidEmail("email", email))
			assert.NoError(t, err, "Email should be valid: %s", email)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		invalidEmails := []string{
			"",
			"   ",
			"plainaddress",
			"@missingdomain.com",
			"missing@domain",
			"two@at@example.com",
			"Bob <bob@example.com>",
			"<bob@example.com>",
			"email@domain..com",
			"a@b.com, c@d.com",
		}

		for _, email := range invalidEmails {
			err := validator.Apply(validator.ValidEmail("email", email))
			require.Error(t, err, "Email should be invalid: %s", email)

			verrs := validator.ExtractValidationErrors(err)
			require.NotNil(t, verrs)
			assert.Equal(t, "validation.email", verrs[0].TranslationKey)
		}
	})
}

func TestValidURL(t *testing.T) {
	t.Parallel()

	for _, u := range []string{"https://example.com", "http://localhost:8080/path?q=1", "ftp://files.example.org/a.txt"} {
		assert.NoError(t, validator.Apply(validator.ValidURL("url", u)), u)
	}
	for _, u := range []string{"", "example.com", "/relative/path", "http://", "not a url"} {
		assert.Error(t, validator.Apply(validator.ValidURL("url", u)), u)
	}
}

func TestValidHostname(t *testing.T) {
	t.Parallel()

	for _, h := range []string{"example.com", "localhost", "sub.domain.example.co.uk", "xn--bcher-kva.example", "example.com."} {
		assert.NoError(t, validator.Apply(validator.ValidHostname("host", h)), h)
	}
	for _, h := range []string{"", "http://example.com", "example.com/path", "-bad.com", "bad-.com", "a..b", "host:8080", "has space.com"} {
		assert.Error(t, validator.Apply(validator.ValidHostname("host", h)), h)
	}
}

func TestCodeRules(t *testing.T) {
	t.Parallel()

	t.Run("country code", func(t *testing.T) {
		for _, v := range []string{"", "NL", "nl", "De"} {
			assert.NoError(t, validator.Apply(validator.ValidCountryCode("country", v)), v)
		}
		for _, v := range []string{"N", "NLD", "1A", "n-"} {
			assert.Error(t, validator.Apply(validator.ValidCountryCode("country", v)), v)
		}
	})

	t.Run("currency format", func(t *testing.T) {
		for _, v := range []string{"", "EUR", "usd", "BT1"} {
			assert.NoError(t, validator.Apply(validator.ValidCurrencyFormat("currency", v)), v)
		}
		for _, v := range []string{"EU", "EURO", "E-R"} {
			assert.Error(t, validator.Apply(validator.ValidCurrencyFormat("currency", v)), v)
		}
	})

	t.Run("bitcoin address", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.ValidBitcoinAddress("btc", "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2")))
		assert.NoError(t, validator.Apply(validator.ValidBitcoinAddress("btc", "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy")))

		err := validator.Apply(validator.ValidBitcoinAddress("btc", "0BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2"))
		require.Error(t, err)
		assert.Equal(t, []string{"validation.bitcoin_address"}, validator.ExtractValidationErrors(err).TranslationKeys())

		// 0, O, I and l are outside the base58 alphabet
		assert.Error(t, validator.Apply(validator.ValidBitcoinAddress("btc", "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN0")))
		assert.Error(t, validator.Apply(validator.ValidBitcoinAddress("btc", "1short")))
	})
}

func TestValidJSON(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.ValidJSON("payload", []byte(`{"a":1}`))))
	assert.NoError(t, validator.Apply(validator.ValidJSON("payload", []byte(`[1,2]`))))
	assert.Error(t, validator.Apply(validator.ValidJSON("payload", []byte(`{"a":`))))
	assert.Error(t, validator.Apply(validator.ValidJSON("payload", nil)))
}

func TestMatchesPattern(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`^(?:[0-9]+)$`)
	assert.NoError(t, validator.Apply(validator.MatchesPattern("foo", "456", re)))

	err := validator.Apply(validator.MatchesPattern("foo", "bar", re))
	require.Error(t, err)
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "foo", verrs[0].Field)
	assert.Equal(t, re.String(), verrs[0].TranslationValues["pattern"])

	assert.Error(t, validator.Apply(validator.MatchesPattern("foo", "anything", nil)))
}
