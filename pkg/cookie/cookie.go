package cookie

import (
	"errors"
	"net/http"
	"time"
)

// Manager writes and reads cookies with a set of immutable default attributes
// established at construction time. Per-call options override the defaults
// without mutating them.
type Manager struct {
	defaults Options
}

// New creates a cookie manager. Defaults are HttpOnly with SameSite=Lax on the
// root path; override with options.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{defaults: applyOptions(defaults, opts)}
}

// Set writes a cookie with the manager defaults merged with the provided
// options.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Expires:  options.Expires,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}

// Get reads the named cookie value from the request.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return cookie.Value, nil
}

// Delete overwrites the named cookie with a sentinel value and an already-past
// expiry so the client drops it.
func (m *Manager) Delete(w http.ResponseWriter, name string, opts ...Option) {
	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "none",
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}
