package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds environment-driven token settings.
type Config struct {
	Secret string        `env:"JWT_SECRET,required"`
	TTL    time.Duration `env:"JWT_EXPIRE" envDefault:"24h"`
}

// Claims carries the identity claims embedded in a session token.
type Claims struct {
	AccountID string `json:"sub"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Service issues and verifies stateless HS256-signed session tokens. Validity
// is determined entirely by signature and expiry; there is no issuance log and
// no revocation.
type Service struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

// Option configures the token service.
type Option func(*Service)

// WithTTL overrides the token lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithTimeFunc overrides the clock used for issuance and expiry checks.
// Intended for tests.
func WithTimeFunc(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a token service with the provided signing secret.
// The secret should be at least 32 bytes for adequate security with HMAC-SHA256.
func New(secret string, opts ...Option) (*Service, error) {
	if secret == "" {
		return nil, ErrMissingSigningKey
	}

	s := &Service{
		signingKey: []byte(secret),
		ttl:        24 * time.Hour,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// NewFromConfig creates a token service from a Config.
func NewFromConfig(cfg Config, opts ...Option) (*Service, error) {
	return New(cfg.Secret, append([]Option{WithTTL(cfg.TTL)}, opts...)...)
}

type registeredClaims struct {
	jwt.RegisteredClaims
}

// Issue creates a signed token asserting the given account id with an expiry
// computed from the configured lifetime.
func (s *Service) Issue(accountID string) (string, error) {
	if accountID == "" {
		return "", ErrMissingSubject
	}

	now := s.now()
	claims := registeredClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

// Verify validates the token signature and expiry and returns the embedded
// claims. Malformed tokens, bad signatures and unexpected signing methods all
// collapse to ErrInvalidToken; a structurally valid token past its expiry
// yields ErrExpiredToken.
func (s *Service) Verify(tokenString string) (Claims, error) {
	var claims registeredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(t *jwt.Token) (any, error) { return s.signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, ErrInvalidToken
	}

	if claims.Subject == "" {
		return Claims{}, ErrInvalidToken
	}

	out := Claims{AccountID: claims.Subject}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return out, nil
}

// TTL reports the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}
