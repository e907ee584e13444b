package auth

import (
	"context"
	"time"
)

// Store defines the credential store operations required by the auth service
// and middleware. Implementations must enforce uniqueness on email and, when
// present, on the Google id; uniqueness violations are the final arbiter of
// concurrent registration races.
type Store interface {
	FindByID(ctx context.Context, id string) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	// FindByEmailOrGoogleID returns the first account matching either key.
	// Either key alone is sufficient; this is what lets a credential account
	// and a later Google login with the same email merge.
	FindByEmailOrGoogleID(ctx context.Context, email, googleID string) (*Account, error)
	Create(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
