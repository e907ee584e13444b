package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/coursekit/pkg/binder"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func jsonRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes valid body", func(t *testing.T) {
		t.Parallel()

		var payload loginPayload
		err := binder.JSON(jsonRequest(`{"email":"a@x.com","password":"secret1"}`), &payload)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", payload.Email)
		assert.Equal(t, "secret1", payload.Password)
	})

	t.Run("charset parameter is accepted", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		r.Header.Set("Content-Type", "application/json; charset=utf-8")

		var payload loginPayload
		assert.NoError(t, binder.JSON(r, &payload))
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		var payload loginPayload
		assert.ErrorIs(t, binder.JSON(r, &payload), binder.ErrMissingContentType)
	})

	t.Run("wrong media type", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		r.Header.Set("Content-Type", "text/plain")

		var payload loginPayload
		assert.ErrorIs(t, binder.JSON(r, &payload), binder.ErrUnsupportedMediaType)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		var payload loginPayload
		assert.ErrorIs(t, binder.JSON(jsonRequest(""), &payload), binder.ErrFailedToParseJSON)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		var payload loginPayload
		assert.ErrorIs(t, binder.JSON(jsonRequest(`{"email":`), &payload), binder.ErrFailedToParseJSON)
	})

	t.Run("trailing data rejected", func(t *testing.T) {
		t.Parallel()

		var payload loginPayload
		assert.ErrorIs(t, binder.JSON(jsonRequest(`{}{}`), &payload), binder.ErrFailedToParseJSON)
	})
}
