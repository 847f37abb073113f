package mocks

import (
	"context"
	"sync"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// MockAuditSink implements domain.AuditSink for testing. Events are
// retained for assertions; recording is always best-effort.
type MockAuditSink struct {
	mu     sync.Mutex
	events []*domain.AuditEvent
}

// NewMockAuditSink creates a new MockAuditSink
func NewMockAuditSink() *MockAuditSink {
	return &MockAuditSink{}
}

// Record stores the event
func (m *MockAuditSink) Record(_ context.Context, event *domain.AuditEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

// Events returns a snapshot of recorded events
func (m *MockAuditSink) Events() []*domain.AuditEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.AuditEvent, len(m.events))
	copy(out, m.events)
	return out
}

// LastEvent returns the most recent event, or nil
func (m *MockAuditSink) LastEvent() *domain.AuditEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.events) == 0 {
		return nil
	}
	return m.events[len(m.events)-1]
}

// HasEvent reports whether an event of the given type was recorded
func (m *MockAuditSink) HasEvent(eventType domain.AuditEventType) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.events {
		if e.EventType == eventType {
			return true
		}
	}
	return false
}
