// Package googleauth verifies Google ID tokens posted by clients that signed
// in with Google on the frontend.
//
// The verifier is fail closed: every verification problem, including network
// failures and timeouts while fetching Google's public keys, is reported as
// ErrInvalidToken so callers never grant partial trust. The expected audience
// is the application's Google client id, fixed at construction time.
package googleauth
