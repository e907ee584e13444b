package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/coursekit/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Ann@Example.COM", "ann@example.com"},
		{"  ann@example.com  ", "ann@example.com"},
		{"a..b@example.com", "a.b@example.com"},
		{".ann.@example.com", "ann@example.com"},
		{"not-an-email", "not-an-email"},
		{"two@@ats", "two@@ats"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitizer.NormalizeEmail(tc.in), tc.in)
	}
}

func TestTrim(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ann", sanitizer.Trim("  Ann \n"))
	assert.Equal(t, "", sanitizer.Trim("   "))
}
