package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/coursekit/pkg/response"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestOK(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	response.OK(rec, http.StatusOK, map[string]string{"id": "1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"id": "1"}, body["data"])
	assert.NotContains(t, body, "token")
	assert.NotContains(t, body, "message")
}

func TestOKWithToken(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	response.OKWithToken(rec, http.StatusCreated, map[string]string{"id": "1"}, "jwt-token")

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "jwt-token", body["token"])
}

func TestFail(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	response.Fail(rec, http.StatusUnauthorized, "Invalid credentials")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid credentials", body["message"])
	assert.NotContains(t, body, "data")
}
