package auth

import (
	"github.com/go-chi/chi/v5"
)

// Routes builds the auth API router. Registration, login and the Google
// exchange are public; everything else requires an authenticated session.
func (h *Handler) Routes(mw *Middleware) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Post("/google", h.google)

	r.Group(func(r chi.Router) {
		r.Use(mw.RequireAuth)

		r.Get("/me", h.me)
		r.Post("/logout", h.logout)
		r.Put("/profile", h.updateProfile)
	})

	return r
}
