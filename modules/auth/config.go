package auth

// Config holds environment-driven settings for the auth module.
type Config struct {
	Environment   string `env:"APP_ENV" envDefault:"development"`
	CookieName    string `env:"AUTH_COOKIE_NAME" envDefault:"token"`
	CookieTTLDays int    `env:"JWT_COOKIE_EXPIRE" envDefault:"7"`
}

// IsProduction reports whether the service runs in a production environment.
// Production tightens the session cookie attributes.
func (c Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}
