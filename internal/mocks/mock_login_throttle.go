package mocks

import (
	"context"
	"time"
)

// MockLoginThrottle implements domain.LoginThrottle for testing
type MockLoginThrottle struct {
	RecordFailureFunc     func(ctx context.Context, username string) error
	RecordSuccessFunc     func(ctx context.Context, username string) error
	IsLockedFunc          func(ctx context.Context, username string) (bool, time.Duration, error)
	RemainingAttemptsFunc func(ctx context.Context, username string) (int, error)
}

// NewMockLoginThrottle creates a new MockLoginThrottle
func NewMockLoginThrottle() *MockLoginThrottle {
	return &MockLoginThrottle{}
}

// RecordFailure counts a failed attempt
func (m *MockLoginThrottle) RecordFailure(ctx context.Context, username string) error {
	if m.RecordFailureFunc != nil {
		return m.RecordFailureFunc(ctx, username)
	}
	// Default behavior: success
	return nil
}

// RecordSuccess clears the failure counter
func (m *MockLoginThrottle) RecordSuccess(ctx context.Context, username string) error {
	if m.RecordSuccessFunc != nil {
		return m.RecordSuccessFunc(ctx, username)
	}
	// Default behavior: success
	return nil
}

// IsLocked reports whether the username is locked out
func (m *MockLoginThrottle) IsLocked(ctx context.Context, username string) (bool, time.Duration, error) {
	if m.IsLockedFunc != nil {
		return m.IsLockedFunc(ctx, username)
	}
	// Default behavior: not locked
	return false, 0, nil
}

// RemainingAttempts reports attempts left before lockout
func (m *MockLoginThrottle) RemainingAttempts(ctx context.Context, username string) (int, error) {
	if m.RemainingAttemptsFunc != nil {
		return m.RemainingAttemptsFunc(ctx, username)
	}
	// Default behavior: all attempts available
	return 5, nil
}
