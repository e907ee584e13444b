package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/coursekit/pkg/googleauth"
	"github.com/dmitrymomot/coursekit/pkg/jwt"
	"github.com/dmitrymomot/coursekit/pkg/logger"
	"github.com/dmitrymomot/coursekit/pkg/sanitizer"
	"github.com/dmitrymomot/coursekit/pkg/validator"
)

const (
	maxNameLen        = 50
	maxBioLen         = 500
	minPasswordLen    = 6
	componentAuthName = "auth"
)

// Service orchestrates the credential store, password hashing, token issuance
// and Google identity verification behind the register/login/profile
// operations. Session cookie transport stays with the HTTP layer.
type Service struct {
	store  Store
	tokens *jwt.Service
	google googleauth.Verifier
	logger *slog.Logger
	now    func() time.Time
}

// ServiceOption configures the auth service.
type ServiceOption func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithTimeFunc overrides the clock used for timestamps. Intended for tests.
func WithTimeFunc(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates the auth service.
func NewService(store Store, tokens *jwt.Service, google googleauth.Verifier, opts ...ServiceOption) *Service {
	s := &Service{
		store:  store,
		tokens: tokens,
		google: google,
		logger: logger.NewDiscard(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// RegisterParams carries the credential registration input.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

// Register creates a new credential account, hashes the password and issues a
// session token. The store's unique email index is the final arbiter of
// concurrent registrations with the same email: a lost race surfaces as the
// same ErrEmailAlreadyExists as the upfront check.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*Account, string, error) {
	params.Name = sanitizer.Trim(params.Name)
	params.Email = sanitizer.NormalizeEmail(params.Email)
	if params.Role == "" {
		params.Role = RoleStudent
	}

	if err := validator.Apply(
		validator.RequiredString("name", params.Name),
		validator.MaxLenString("name", params.Name, maxNameLen),
		validator.ValidEmail("email", params.Email),
		validator.RequiredString("password", params.Password),
		validator.MinLenString("password", params.Password, minPasswordLen),
		validator.InListString("role", string(params.Role), roleNames()),
	); err != nil {
		return nil, "", err
	}

	_, err := s.store.FindByEmail(ctx, params.Email)
	if err == nil {
		return nil, "", ErrEmailAlreadyExists
	}
	if !errors.Is(err, ErrAccountNotFound) {
		return nil, "", fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := hashPassword(params.Password)
	if err != nil {
		return nil, "", err
	}

	now := s.now()
	account := &Account{
		ID:           uuid.New().String(),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: hash,
		Role:         params.Role,
		LastLogin:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.Create(ctx, account); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.InfoContext(ctx, "account registered",
		logger.AccountID(account.ID),
		logger.Email(account.Email),
		logger.Component(componentAuthName),
	)

	return account, token, nil
}

// Login authenticates a credential account. A missing account and a wrong
// password both produce the identical ErrInvalidCredentials so callers cannot
// enumerate registered emails.
func (s *Service) Login(ctx context.Context, email, password string) (*Account, string, error) {
	email = sanitizer.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", ErrMissingCredentials
	}

	account, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !checkPassword(password, account.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.authenticated(ctx, account)
	if err != nil {
		return nil, "", err
	}

	s.logger.InfoContext(ctx, "account logged in",
		logger.AccountID(account.ID),
		logger.Email(account.Email),
		logger.Component(componentAuthName),
	)

	return account, token, nil
}

// GoogleLogin verifies a Google ID token and reconciles the asserted identity
// with a local account: an account matching by email or Google subject id is
// linked (permanently) and anything else creates a fresh verified account with
// no usable password. Repeated logins with the same subject id always resolve
// to the same account.
func (s *Service) GoogleLogin(ctx context.Context, rawToken string) (*Account, string, error) {
	identity, err := s.google.Verify(ctx, rawToken)
	if err != nil {
		return nil, "", err
	}

	identity.Email = sanitizer.NormalizeEmail(identity.Email)

	account, err := s.store.FindByEmailOrGoogleID(ctx, identity.Email, identity.SubjectID)
	switch {
	case err == nil:
		if account.GoogleID == "" {
			account.GoogleID = identity.SubjectID
			if identity.Picture != "" {
				account.Avatar = identity.Picture
			}
			account.Verified = true
			account.UpdatedAt = s.now()
			if err := s.store.Update(ctx, account); err != nil {
				return nil, "", err
			}
		}
	case errors.Is(err, ErrAccountNotFound):
		now := s.now()
		account = &Account{
			ID:        uuid.New().String(),
			Name:      identity.Name,
			Email:     identity.Email,
			Role:      RoleStudent,
			Avatar:    identity.Picture,
			GoogleID:  identity.SubjectID,
			Verified:  true,
			LastLogin: now,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.store.Create(ctx, account); err != nil {
			return nil, "", err
		}
	default:
		return nil, "", fmt.Errorf("failed to look up account: %w", err)
	}

	token, err := s.authenticated(ctx, account)
	if err != nil {
		return nil, "", err
	}

	s.logger.InfoContext(ctx, "google login",
		logger.AccountID(account.ID),
		logger.Email(account.Email),
		logger.Component(componentAuthName),
	)

	return account, token, nil
}

// Me returns the account for the given id.
func (s *Service) Me(ctx context.Context, accountID string) (*Account, error) {
	return s.store.FindByID(ctx, accountID)
}

// UpdateProfileParams carries the mutable profile fields. Nil means "leave
// unchanged"; credential and role fields are never touched here.
type UpdateProfileParams struct {
	Name *string
	Bio  *string
}

// UpdateProfile updates the mutable profile fields with length validation.
func (s *Service) UpdateProfile(ctx context.Context, accountID string, params UpdateProfileParams) (*Account, error) {
	account, err := s.store.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	var rules []validator.Rule
	if params.Name != nil {
		name := sanitizer.Trim(*params.Name)
		rules = append(rules,
			validator.RequiredString("name", name),
			validator.MaxLenString("name", name, maxNameLen),
		)
		params.Name = &name
	}
	if params.Bio != nil {
		rules = append(rules, validator.MaxLenString("bio", *params.Bio, maxBioLen))
	}
	if err := validator.Apply(rules...); err != nil {
		return nil, err
	}

	if params.Name != nil {
		account.Name = *params.Name
	}
	if params.Bio != nil {
		account.Bio = *params.Bio
	}
	account.UpdatedAt = s.now()

	if err := s.store.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// authenticated stamps the last successful authentication and issues a token.
func (s *Service) authenticated(ctx context.Context, account *Account) (string, error) {
	now := s.now()
	if err := s.store.UpdateLastLogin(ctx, account.ID, now); err != nil {
		return "", fmt.Errorf("failed to stamp last login: %w", err)
	}
	account.LastLogin = now

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

func roleNames() []string {
	roles := Roles()
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, string(r))
	}
	return names
}
