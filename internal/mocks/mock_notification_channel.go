package mocks

import "context"

// MockNotificationChannel implements domain.NotificationChannel for testing
type MockNotificationChannel struct {
	DeliverFunc func(ctx context.Context, identity, message string) error

	// Delivered records every successful default delivery for assertions
	Delivered []string
}

// NewMockNotificationChannel creates a new MockNotificationChannel
func NewMockNotificationChannel() *MockNotificationChannel {
	return &MockNotificationChannel{}
}

// Deliver delivers a message to an external identity
func (m *MockNotificationChannel) Deliver(ctx context.Context, identity, message string) error {
	if m.DeliverFunc != nil {
		return m.DeliverFunc(ctx, identity, message)
	}
	// Default behavior: accepted
	m.Delivered = append(m.Delivered, message)
	return nil
}
