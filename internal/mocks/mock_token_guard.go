package mocks

import (
	"context"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// MockTokenGuard implements domain.TokenGuard for testing
type MockTokenGuard struct {
	ValidateFunc    func(ctx context.Context, accessToken string) (*domain.TokenValidation, error)
	BumpVersionFunc func(ctx context.Context, user *domain.User) error
}

// NewMockTokenGuard creates a new MockTokenGuard
func NewMockTokenGuard() *MockTokenGuard {
	return &MockTokenGuard{}
}

// Validate validates an access token against the current user version
func (m *MockTokenGuard) Validate(ctx context.Context, accessToken string) (*domain.TokenValidation, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, accessToken)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// BumpVersion increments the user's token version and revokes refresh tokens.
// The default mirrors the real guard so tests can assert on the version.
func (m *MockTokenGuard) BumpVersion(ctx context.Context, user *domain.User) error {
	if m.BumpVersionFunc != nil {
		return m.BumpVersionFunc(ctx, user)
	}
	user.TokenVersion = user.CurrentTokenVersion() + 1
	return nil
}
