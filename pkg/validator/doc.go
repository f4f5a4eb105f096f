// Package validator provides small predicate rules for the value formats
// accepted by request parameters: email addresses, URLs, hostnames, country
// and currency codes, bitcoin addresses, JSON payloads and custom patterns.
//
// Every exported function constructs a Rule that pairs a Check function with
// translation-friendly error metadata. Rules are evaluated with Apply, which
// aggregates failures into ValidationErrors:
//
//	err := validator.Apply(
//	    validator.ValidEmail("email", email),
//	    validator.ValidCountryCode("country", country),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs[0].TranslationKey == "validation.email"
//	}
//
// The package holds no state apart from precompiled expressions and is safe
// for concurrent use.
package validator
