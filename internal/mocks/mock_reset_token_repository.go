package mocks

import (
	"context"
	"time"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// MockResetTokenRepository implements domain.PasswordResetTokenRepository for testing
type MockResetTokenRepository struct {
	InsertFunc       func(ctx context.Context, username, code string, ttl time.Duration) error
	FindUsernameFunc func(ctx context.Context, code string) (string, error)
	DeleteFunc       func(ctx context.Context, code string) error
}

// NewMockResetTokenRepository creates a new MockResetTokenRepository
func NewMockResetTokenRepository() *MockResetTokenRepository {
	return &MockResetTokenRepository{}
}

// Insert stores a reset code for a username
func (m *MockResetTokenRepository) Insert(ctx context.Context, username, code string, ttl time.Duration) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, username, code, ttl)
	}
	// Default behavior: success
	return nil
}

// FindUsername resolves a reset code to its owner
func (m *MockResetTokenRepository) FindUsername(ctx context.Context, code string) (string, error) {
	if m.FindUsernameFunc != nil {
		return m.FindUsernameFunc(ctx, code)
	}
	// Default behavior: unknown code
	return "", domain.ErrInvalidResetCode
}

// Delete consumes a reset code
func (m *MockResetTokenRepository) Delete(ctx context.Context, code string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, code)
	}
	// Default behavior: success
	return nil
}
