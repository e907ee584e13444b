package sanitizer

import (
	"regexp"
	"strings"
)

var dotRegex = regexp.MustCompile(`\.+`)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeEmail lowercases and trims an email address and consolidates
// consecutive dots in the local part. Invalid shapes are returned as-is so
// validation can report them.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	email = strings.ToLower(email)

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := parts[0]
	domain := parts[1]

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}
