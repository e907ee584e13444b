package auth_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/coursekit/modules/auth"
	"github.com/dmitrymomot/coursekit/pkg/googleauth"
)

// MockStore is a mock implementation of auth.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) FindByID(ctx context.Context, id string) (*auth.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Account), args.Error(1)
}

func (m *MockStore) FindByEmail(ctx context.Context, email string) (*auth.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Account), args.Error(1)
}

func (m *MockStore) FindByEmailOrGoogleID(ctx context.Context, email, googleID string) (*auth.Account, error) {
	args := m.Called(ctx, email, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Account), args.Error(1)
}

func (m *MockStore) Create(ctx context.Context, account *auth.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockStore) Update(ctx context.Context, account *auth.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockStore) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// MockGoogleVerifier is a mock implementation of googleauth.Verifier.
type MockGoogleVerifier struct {
	mock.Mock
}

func (m *MockGoogleVerifier) Verify(ctx context.Context, rawToken string) (googleauth.Identity, error) {
	args := m.Called(ctx, rawToken)
	return args.Get(0).(googleauth.Identity), args.Error(1)
}
