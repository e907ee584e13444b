package auth

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/coursekit/pkg/cookie"
)

// SessionCookies encodes and clears the transport-level session artifact. The
// cookie is HTTP-only always; in production it is additionally Secure with
// SameSite=None (cross-site frontends), otherwise SameSite=Lax without Secure
// so local development over plain HTTP keeps working.
type SessionCookies struct {
	manager    *cookie.Manager
	name       string
	ttl        time.Duration
	production bool
	now        func() time.Time
}

// NewSessionCookies creates the session cookie manager from module config.
func NewSessionCookies(cfg Config) *SessionCookies {
	name := cfg.CookieName
	if name == "" {
		name = "token"
	}
	days := cfg.CookieTTLDays
	if days <= 0 {
		days = 7
	}

	return &SessionCookies{
		manager:    cookie.New(),
		name:       name,
		ttl:        time.Duration(days) * 24 * time.Hour,
		production: cfg.IsProduction(),
		now:        time.Now,
	}
}

// Name returns the session cookie name.
func (s *SessionCookies) Name() string {
	return s.name
}

// Attach sets the session cookie holding the token.
func (s *SessionCookies) Attach(w http.ResponseWriter, token string) {
	s.manager.Set(w, s.name, token, s.options()...)
}

// Clear overwrites the cookie with a sentinel value and an already-past
// expiry, causing the client to drop it. This is the entirety of logout; the
// token itself stays valid until natural expiry.
func (s *SessionCookies) Clear(w http.ResponseWriter) {
	s.manager.Delete(w, s.name, s.options()...)
}

func (s *SessionCookies) options() []cookie.Option {
	opts := []cookie.Option{
		cookie.WithHTTPOnly(true),
		cookie.WithExpires(s.now().Add(s.ttl)),
	}
	if s.production {
		// SameSite=None mandates Secure.
		opts = append(opts,
			cookie.WithSecure(true),
			cookie.WithSameSite(http.SameSiteNoneMode),
		)
	} else {
		opts = append(opts, cookie.WithSameSite(http.SameSiteLaxMode))
	}
	return opts
}
