package mocks

import (
	"context"
	"time"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// MockRefreshTokenRepository implements domain.RefreshTokenRepository for testing
type MockRefreshTokenRepository struct {
	ReplaceForUserFunc func(ctx context.Context, userID uint, token string, expiresAt time.Time) error
	FindByTokenFunc    func(ctx context.Context, token string) (*domain.RefreshToken, error)
	DeleteForUserFunc  func(ctx context.Context, userID uint) error
}

// NewMockRefreshTokenRepository creates a new MockRefreshTokenRepository
func NewMockRefreshTokenRepository() *MockRefreshTokenRepository {
	return &MockRefreshTokenRepository{}
}

// ReplaceForUser upserts the user's refresh token
func (m *MockRefreshTokenRepository) ReplaceForUser(ctx context.Context, userID uint, token string, expiresAt time.Time) error {
	if m.ReplaceForUserFunc != nil {
		return m.ReplaceForUserFunc(ctx, userID, token, expiresAt)
	}
	// Default behavior: success
	return nil
}

// FindByToken finds a refresh token by its value
func (m *MockRefreshTokenRepository) FindByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	if m.FindByTokenFunc != nil {
		return m.FindByTokenFunc(ctx, token)
	}
	// Default behavior: not found
	return nil, domain.ErrRefreshTokenNotFound
}

// DeleteForUser removes the user's refresh token
func (m *MockRefreshTokenRepository) DeleteForUser(ctx context.Context, userID uint) error {
	if m.DeleteForUserFunc != nil {
		return m.DeleteForUserFunc(ctx, userID)
	}
	// Default behavior: success
	return nil
}
