package googleauth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"github.com/dmitrymomot/coursekit/pkg/googleauth"
)

func testConfig() googleauth.Config {
	return googleauth.Config{
		ClientID:      "client-id.apps.googleusercontent.com",
		VerifyTimeout: time.Second,
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	t.Run("extracts canonical identity", func(t *testing.T) {
		t.Parallel()

		v := googleauth.New(testConfig(), googleauth.WithValidateFunc(
			func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "raw-token", token)
				assert.Equal(t, "client-id.apps.googleusercontent.com", audience)
				return &idtoken.Payload{
					Subject: "google-sub-1",
					Claims: map[string]any{
						"email":   "ann@example.com",
						"name":    "Ann",
						"picture": "https://example.com/ann.png",
					},
				}, nil
			},
		))

		identity, err := v.Verify(context.Background(), "raw-token")
		require.NoError(t, err)
		assert.Equal(t, "google-sub-1", identity.SubjectID)
		assert.Equal(t, "ann@example.com", identity.Email)
		assert.Equal(t, "Ann", identity.Name)
		assert.Equal(t, "https://example.com/ann.png", identity.Picture)
	})

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()

		v := googleauth.New(testConfig())
		_, err := v.Verify(context.Background(), "")
		assert.ErrorIs(t, err, googleauth.ErrMissingToken)
	})

	t.Run("provider failure collapses to invalid token", func(t *testing.T) {
		t.Parallel()

		v := googleauth.New(testConfig(), googleauth.WithValidateFunc(
			func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
				return nil, errors.New("idtoken: audience provided does not match")
			},
		))

		_, err := v.Verify(context.Background(), "raw-token")
		assert.ErrorIs(t, err, googleauth.ErrInvalidToken)
	})

	t.Run("slow provider times out and fails closed", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.VerifyTimeout = 20 * time.Millisecond
		v := googleauth.New(cfg, googleauth.WithValidateFunc(
			func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(time.Second):
					return &idtoken.Payload{Subject: "x"}, nil
				}
			},
		))

		start := time.Now()
		_, err := v.Verify(context.Background(), "raw-token")
		assert.ErrorIs(t, err, googleauth.ErrInvalidToken)
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("payload without email is rejected", func(t *testing.T) {
		t.Parallel()

		v := googleauth.New(testConfig(), googleauth.WithValidateFunc(
			func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
				return &idtoken.Payload{Subject: "google-sub-1"}, nil
			},
		))

		_, err := v.Verify(context.Background(), "raw-token")
		assert.ErrorIs(t, err, googleauth.ErrInvalidToken)
	})
}
