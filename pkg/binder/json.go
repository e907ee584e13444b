package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultMaxJSONSize is the maximum accepted JSON request body (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSON decodes the request body into v. The content type must be
// application/json and the body must contain exactly one JSON value.
func JSON(r *http.Request, v any) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}

	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}
	if mediaType != "application/json" {
		return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, DefaultMaxJSONSize))
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	// Ensure the entire body was consumed.
	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
	}

	return nil
}
