// Package jwt issues and verifies the stateless session tokens used to
// authenticate API requests.
//
// Tokens are HS256-signed JWTs carrying the account id as the subject claim
// together with issued-at and expiry timestamps. Nothing is persisted on the
// server side: a token is valid exactly when its signature checks out and it
// has not expired. Logout is a client-side transport action; an already
// issued token remains valid until its natural expiry.
//
//	svc, err := jwt.New(cfg.Secret, jwt.WithTTL(24*time.Hour))
//	token, err := svc.Issue(account.ID)
//	claims, err := svc.Verify(token) // ErrInvalidToken / ErrExpiredToken
package jwt
