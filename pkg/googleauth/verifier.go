package googleauth

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/api/idtoken"

	"github.com/dmitrymomot/coursekit/pkg/logger"
)

// Config holds the trusted-provider settings. The client id is the expected
// audience of every accepted assertion.
type Config struct {
	ClientID      string        `env:"GOOGLE_CLIENT_ID,required"`
	VerifyTimeout time.Duration `env:"GOOGLE_VERIFY_TIMEOUT" envDefault:"10s"`
}

// Identity is the canonical identity extracted from a verified assertion.
type Identity struct {
	SubjectID string
	Email     string
	Name      string
	Picture   string
}

// Verifier validates a raw federated identity assertion against the trusted
// provider and extracts a canonical identity.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (Identity, error)
}

// validateFunc matches idtoken.Validate; swappable for tests.
type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

type verifier struct {
	audience string
	timeout  time.Duration
	validate validateFunc
	logger   *slog.Logger
}

// Option configures the verifier.
type Option func(*verifier)

// WithLogger sets a custom logger for the verifier.
func WithLogger(log *slog.Logger) Option {
	return func(v *verifier) {
		if log != nil {
			v.logger = log
		}
	}
}

// WithValidateFunc overrides the underlying token validation call. Intended
// for tests that must not reach Google's certificate endpoints.
func WithValidateFunc(fn validateFunc) Option {
	return func(v *verifier) {
		if fn != nil {
			v.validate = fn
		}
	}
}

// New creates a verifier for Google ID tokens. Verification checks the token
// signature against Google's current public keys and the audience against the
// configured client id.
func New(cfg Config, opts ...Option) Verifier {
	v := &verifier{
		audience: cfg.ClientID,
		timeout:  cfg.VerifyTimeout,
		validate: idtoken.Validate,
		logger:   logger.NewDiscard(),
	}
	if v.timeout <= 0 {
		v.timeout = 10 * time.Second
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Verify validates the assertion and extracts the canonical identity. Any
// mismatch, expiry, network failure or timeout collapses to ErrInvalidToken;
// the underlying cause is logged but never surfaced to the caller.
func (v *verifier) Verify(ctx context.Context, rawToken string) (Identity, error) {
	if rawToken == "" {
		return Identity{}, ErrMissingToken
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	payload, err := v.validate(ctx, rawToken, v.audience)
	if err != nil {
		v.logger.DebugContext(ctx, "google id token rejected",
			logger.Error(err),
			logger.Component("googleauth"),
		)
		return Identity{}, ErrInvalidToken
	}

	identity := Identity{
		SubjectID: payload.Subject,
		Email:     claimString(payload, "email"),
		Name:      claimString(payload, "name"),
		Picture:   claimString(payload, "picture"),
	}

	// A usable identity needs both a stable subject and an email; anything
	// less is treated as an invalid assertion.
	if identity.SubjectID == "" || identity.Email == "" {
		return Identity{}, ErrInvalidToken
	}

	return identity, nil
}

func claimString(payload *idtoken.Payload, key string) string {
	if payload.Claims == nil {
		return ""
	}
	s, _ := payload.Claims[key].(string)
	return s
}
