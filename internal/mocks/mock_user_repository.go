package mocks

import (
	"context"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc               func(ctx context.Context, user *domain.User) error
	FindByUsernameFunc       func(ctx context.Context, username string) (*domain.User, error)
	FindByIDFunc             func(ctx context.Context, id uint) (*domain.User, error)
	UpdateFunc               func(ctx context.Context, user *domain.User) error
	BumpVersionAndRevokeFunc func(ctx context.Context, user *domain.User) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByUsername finds a user by username
func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// Update updates an existing user
func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// BumpVersionAndRevoke persists the user and purges refresh tokens
func (m *MockUserRepository) BumpVersionAndRevoke(ctx context.Context, user *domain.User) error {
	if m.BumpVersionAndRevokeFunc != nil {
		return m.BumpVersionAndRevokeFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}
