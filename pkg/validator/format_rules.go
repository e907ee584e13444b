package validator

import (
	"net/mail"
	"strings"
)

// ValidEmail validates that a string is a usable email address. The address
// must parse per RFC 5322 and have a dotted domain, which is stricter than the
// RFC but matches what web applications actually accept.
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

			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 {
				return false
			}

			local, domain := parts[0], parts[1]
			if local == "" {
				return false
			}
			if !strings.Contains(domain, ".") ||
				strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}
