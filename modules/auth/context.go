package auth

import "context"

// accountCtxKey is a private type for the request auth context key.
type accountCtxKey struct{}

// SetAccount stores the resolved account in the request context.
func SetAccount(ctx context.Context, account *Account) context.Context {
	return context.WithValue(ctx, accountCtxKey{}, account)
}

// AccountFromContext retrieves the resolved account from the request context.
// The second return value is false when the request carries no identity.
func AccountFromContext(ctx context.Context) (*Account, bool) {
	account, ok := ctx.Value(accountCtxKey{}).(*Account)
	return account, ok && account != nil
}
