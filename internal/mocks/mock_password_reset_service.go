package mocks

import "context"

// MockPasswordResetService implements domain.PasswordResetService for testing
type MockPasswordResetService struct {
	InitiateFunc func(ctx context.Context, username string) error
	CompleteFunc func(ctx context.Context, username, code, newPassword string) error
}

// NewMockPasswordResetService creates a new MockPasswordResetService
func NewMockPasswordResetService() *MockPasswordResetService {
	return &MockPasswordResetService{}
}

// Initiate starts the out-of-band reset flow
func (m *MockPasswordResetService) Initiate(ctx context.Context, username string) error {
	if m.InitiateFunc != nil {
		return m.InitiateFunc(ctx, username)
	}
	// Default behavior: success
	return nil
}

// Complete finishes the reset flow
func (m *MockPasswordResetService) Complete(ctx context.Context, username, code, newPassword string) error {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, username, code, newPassword)
	}
	// Default behavior: success
	return nil
}
