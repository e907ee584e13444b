package googleauth

import "errors"

var (
	// ErrMissingToken is returned when no assertion was provided at all.
	ErrMissingToken = errors.New("googleauth: missing id token")
	// ErrInvalidToken covers every verification failure: bad signature,
	// wrong audience, expiry, malformed token, network error or timeout.
	ErrInvalidToken = errors.New("googleauth: invalid id token")
)
