package validator

import "regexp"

var (
	// Empty or two letters, any case
	countryCodeRegex = regexp.MustCompile(`^(?:[A-Za-z]{2})?$`)

	// Empty or three ASCII letters/digits, any case
	currencyFormatRegex = regexp.MustCompile(`^(?:[A-Za-z0-9]{3})?$`)

	// Legacy P2PKH/P2SH base58 address
	bitcoinAddressRegex = regexp.MustCompile(`^[13][a-km-zA-HJ-NP-Z1-9]{25,34}$`)
)

// ValidCountryCode validates a two-letter language, nationality or country code.
// An empty value is accepted so that "not specified" can be expressed.
func ValidCountryCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return countryCodeRegex.MatchString(value)
		},
		Error: newError(field, "must be a two-letter code", "validation.country_code", nil),
	}
}

// ValidCurrencyFormat validates the shape of a currency code: empty or three
// alphanumeric characters. It does not check ISO 4217 membership.
func ValidCurrencyFormat(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return currencyFormatRegex.MatchString(value)
		},
		Error: newError(field, "must be a three-character currency code", "validation.currency_code", nil),
	}
}

// ValidBitcoinAddress validates a legacy base58 bitcoin address by character
// class and length. The checksum is not verified.
func ValidBitcoinAddress(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return bitcoinAddressRegex.MatchString(value)
		},
		Error: newError(field, "must be a valid bitcoin address", "validation.bitcoin_address", nil),
	}
}
