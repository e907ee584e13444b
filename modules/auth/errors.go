package auth

import "errors"

// General authentication errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
)

// Store-level errors
var (
	// ErrGoogleIDLinked is returned when a Google identity is already linked
	// to a different account.
	ErrGoogleIDLinked = errors.New("google account already linked")
)
