package validator

import (
	"fmt"
	"strings"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// MinLenString validates a minimum string length in bytes.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}

// MaxLenString validates a maximum string length in bytes.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

// InListString validates that the value is one of the allowed strings.
func InListString(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		},
	}
}
