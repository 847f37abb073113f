package mocks

import (
	"context"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc           func(ctx context.Context, username, password string) (*domain.User, error)
	LoginFunc              func(ctx context.Context, username, password string) (*domain.AuthResult, error)
	RefreshAccessTokenFunc func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	LogoutFunc             func(ctx context.Context, username string) error
	ChangePasswordFunc     func(ctx context.Context, username, currentPassword, newPassword string) error
	VerifyAccountFunc      func(ctx context.Context, username, code string) error
}

// NewMockAuthService creates a new MockAuthService
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register creates a new account
func (m *MockAuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, password)
	}
	// Default behavior: unverified account at version 1
	return &domain.User{ID: 1, Username: username, TokenVersion: 1, Active: true}, nil
}

// Login authenticates and issues tokens
func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	// Default behavior: successful login
	return &domain.AuthResult{
		User:         &domain.User{ID: 1, Username: username, TokenVersion: 1, Active: true, Verified: true},
		AccessToken:  "access_" + username + "_v1",
		RefreshToken: "refresh-token",
		ExpiresIn:    900,
	}, nil
}

// RefreshAccessToken exchanges a refresh token for a new access token
func (m *MockAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshAccessTokenFunc != nil {
		return m.RefreshAccessTokenFunc(ctx, refreshToken)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// Logout revokes the user's refresh token
func (m *MockAuthService) Logout(ctx context.Context, username string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, username)
	}
	// Default behavior: success
	return nil
}

// ChangePassword rotates the password and revokes sessions
func (m *MockAuthService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, username, currentPassword, newPassword)
	}
	// Default behavior: success
	return nil
}

// VerifyAccount confirms account ownership
func (m *MockAuthService) VerifyAccount(ctx context.Context, username, code string) error {
	if m.VerifyAccountFunc != nil {
		return m.VerifyAccountFunc(ctx, username, code)
	}
	// Default behavior: success
	return nil
}
