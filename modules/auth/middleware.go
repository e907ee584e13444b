package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/coursekit/pkg/jwt"
	"github.com/dmitrymomot/coursekit/pkg/logger"
)

// Middleware establishes per-request trust: it extracts a session token,
// verifies it and resolves the account before the handler runs.
type Middleware struct {
	tokens     *jwt.Service
	store      Store
	cookieName string
	logger     *slog.Logger
}

// MiddlewareOption configures the middleware.
type MiddlewareOption func(*Middleware)

// WithMiddlewareLogger sets a custom logger for the middleware.
func WithMiddlewareLogger(log *slog.Logger) MiddlewareOption {
	return func(m *Middleware) {
		if log != nil {
			m.logger = log
		}
	}
}

// NewMiddleware creates the auth middleware. The cookie name must match the
// session cookie manager's.
func NewMiddleware(tokens *jwt.Service, store Store, cookieName string, opts ...MiddlewareOption) *Middleware {
	if cookieName == "" {
		cookieName = "token"
	}

	m := &Middleware{
		tokens:     tokens,
		store:      store,
		cookieName: cookieName,
		logger:     logger.NewDiscard(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// extractToken prefers the session cookie and falls back to a bearer-scheme
// authorization header. The second return value is false when neither is
// present.
func (m *Middleware) extractToken(r *http.Request) (string, bool) {
	if c, err := r.Cookie(m.cookieName); err == nil && c.Value != "" && c.Value != "none" {
		return c.Value, true
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// resolve runs the extract-verify-resolve pipeline and returns the account.
func (m *Middleware) resolve(r *http.Request) (*Account, error) {
	token, ok := m.extractToken(r)
	if !ok {
		return nil, ErrUnauthenticated
	}

	claims, err := m.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	account, err := m.store.FindByID(r.Context(), claims.AccountID)
	if err != nil {
		// Token was valid but the account is gone, e.g. deleted after issuance.
		return nil, err
	}

	return account, nil
}

// RequireAuth rejects the request unless a valid token resolves to an
// existing account. On success the account is attached to the request
// context.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, err := m.resolve(r)
		if err != nil {
			m.logger.DebugContext(r.Context(), "request rejected",
				logger.Error(err),
				logger.Component(componentAuthName),
			)
			writeError(w, r, m.logger, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(SetAccount(r.Context(), account)))
	})
}

// OptionalAuth runs the same pipeline as RequireAuth but swallows every
// failure: the request proceeds with an empty auth context instead of being
// rejected. For endpoints whose behavior varies with, but does not require,
// identity.
func (m *Middleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if account, err := m.resolve(r); err == nil {
			r = r.WithContext(SetAccount(r.Context(), account))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole gates the request on the resolved account's role. It must run
// after RequireAuth; a request without a resolved account is rejected as
// unauthenticated rather than forbidden.
func (m *Middleware) RequireRole(allowed ...Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account, ok := AccountFromContext(r.Context())
			if !ok {
				writeError(w, r, m.logger, ErrUnauthenticated)
				return
			}

			if !account.Role.In(allowed...) {
				m.logger.DebugContext(r.Context(), "role gate rejected request",
					logger.AccountID(account.ID),
					logger.Role(account.Role),
					logger.Component(componentAuthName),
				)
				writeError(w, r, m.logger, ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
