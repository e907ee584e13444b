// Package auth implements account authentication and authorization for the
// course platform: password registration and login, Google federated login,
// stateless JWT sessions delivered as both a cookie and a bearer token, and
// role-based route protection.
//
// # Architecture Overview
//
// The package is split into a small set of cooperating pieces:
//
//   - Service holds the business logic (register, login, Google exchange,
//     profile reads and updates) over a Store interface.
//   - Store abstracts account persistence; MongoStore is the production
//     implementation backed by the users collection.
//   - Middleware resolves the caller from the session cookie or the
//     Authorization header and enforces authentication and role checks.
//   - SessionCookies owns the cookie write policy, including the
//     environment-dependent Secure and SameSite attributes.
//   - Handler exposes everything as JSON endpoints under /api/auth.
//
// # Service Usage
//
//	store := auth.NewMongoStore(db)
//	svc := auth.NewService(store, tokens, verifier, auth.WithLogger(log))
//
//	account, token, err := svc.Register(ctx, auth.RegisterParams{
//		Name:     "Jane Doe",
//		Email:    "jane@example.com",
//		Password: "secret-password",
//	})
//
// Tokens issued by the service carry only the account ID; every protected
// request re-reads the account from the store, so deleted accounts lose
// access as soon as their next request arrives.
//
// # Federated Login
//
// GoogleLogin accepts a Google ID token, verifies it against the configured
// client ID and then links the Google identity to an existing account with
// the same email address, or creates a new verified account when none
// exists. Accounts created this way have no password hash and can only sign
// in through Google.
package auth
