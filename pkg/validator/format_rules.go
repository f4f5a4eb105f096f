package validator

import (
	"net/mail"
	"net/url"
	"strings"
)

// ValidEmail validates that a string is a single bare address in local@domain
// form. Display names, groups and addresses without a dotted domain are rejected.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			// "Bob <bob@example.com>" parses, but only the bare form is accepted
			if addr.Name != "" || addr.Address != value {
				return false
			}

			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" || strings.Contains(domain, "@") {
				return false
			}

			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: newError(field, "must be a valid email address", "validation.email", nil),
	}
}

// ValidURL validates that a string is an absolute URL with scheme and host.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}

			return u.Scheme != "" && u.Host != ""
		},
		Error: newError(field, "must be a valid URL", "validation.url", nil),
	}
}

// ValidHostname validates a bare hostname: no scheme, port or path.
// Single-label names such as "localhost" are accepted.
func ValidHostname(field, value string) Rule {
	return Rule{
		Check: func() bool {
			name := strings.TrimSuffix(value, ".")
			if name == "" || len(name) > 253 {
				return false
			}

			for label := range strings.SplitSeq(name, ".") {
				if len(label) == 0 || len(label) > 63 {
					return false
				}
				if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
					return false
				}
				for _, char := range label {
					//nolint:staticcheck // More readable than De Morgan's law
					if !((char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') ||
						(char >= '0' && char <= '9') || char == '-' || char == '_') {
						return false
					}
				}
			}

			return true
		},
		Error: newError(field, "must be a valid domain name", "validation.domain_name", nil),
	}
}
