package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/coursekit/pkg/jwt"
)

const testSecret = "test-secret-32-characters-long!!"

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty secret", func(t *testing.T) {
		t.Parallel()

		_, err := jwt.New("")
		assert.ErrorIs(t, err, jwt.ErrMissingSigningKey)
	})

	t.Run("creates service with defaults", func(t *testing.T) {
		t.Parallel()

		svc, err := jwt.New(testSecret)
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, svc.TTL())
	})

	t.Run("applies ttl option", func(t *testing.T) {
		t.Parallel()

		svc, err := jwt.New(testSecret, jwt.WithTTL(15*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 15*time.Minute, svc.TTL())
	})
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	t.Run("round trip returns subject and expiry", func(t *testing.T) {
		t.Parallel()

		issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		svc, err := jwt.New(testSecret,
			jwt.WithTTL(time.Hour),
			jwt.WithTimeFunc(func() time.Time { return issued }),
		)
		require.NoError(t, err)

		token, err := svc.Issue("account-123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "account-123", claims.AccountID)
		assert.Equal(t, issued.Unix(), claims.IssuedAt)
		assert.Equal(t, issued.Add(time.Hour).Unix(), claims.ExpiresAt)
	})

	t.Run("rejects empty subject", func(t *testing.T) {
		t.Parallel()

		svc, err := jwt.New(testSecret)
		require.NoError(t, err)

		_, err = svc.Issue("")
		assert.ErrorIs(t, err, jwt.ErrMissingSubject)
	})

	t.Run("expired token fails with ErrExpiredToken", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		svc, err := jwt.New(testSecret,
			jwt.WithTTL(time.Minute),
			jwt.WithTimeFunc(func() time.Time { return now }),
		)
		require.NoError(t, err)

		token, err := svc.Issue("account-123")
		require.NoError(t, err)

		// Advance the clock past expiry.
		now = now.Add(2 * time.Minute)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("token signed with different key fails", func(t *testing.T) {
		t.Parallel()

		issuer, err := jwt.New("another-secret-32-characters!!!!")
		require.NoError(t, err)
		verifier, err := jwt.New(testSecret)
		require.NoError(t, err)

		token, err := issuer.Issue("account-123")
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("malformed token fails with ErrInvalidToken", func(t *testing.T) {
		t.Parallel()

		svc, err := jwt.New(testSecret)
		require.NoError(t, err)

		for _, tok := range []string{"", "garbage", "a.b", "a.b.c"} {
			_, err := svc.Verify(tok)
			assert.ErrorIs(t, err, jwt.ErrInvalidToken, "token %q", tok)
		}
	})

	t.Run("tampered payload fails signature check", func(t *testing.T) {
		t.Parallel()

		svc, err := jwt.New(testSecret)
		require.NoError(t, err)

		token, err := svc.Issue("account-123")
		require.NoError(t, err)

		tampered := token[:len(token)-4] + "AAAA"
		_, err = svc.Verify(tampered)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
