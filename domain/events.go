package domain

import (
	"context"
	"time"
)

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Authentication events
	LoginSuccessEvent      AuditEventType = "LOGIN_SUCCESS"
	LoginFailureEvent      AuditEventType = "LOGIN_FAILURE"
	AccountLockedEvent     AuditEventType = "ACCOUNT_LOCKED"
	BruteForceAttemptEvent AuditEventType = "BRUTE_FORCE_ATTEMPT"
	UserLogoutEvent        AuditEventType = "USER_LOGOUT"
	UserRegisteredEvent    AuditEventType = "USER_REGISTERED"
	AccountVerifiedEvent   AuditEventType = "ACCOUNT_VERIFIED"
	TokenRefreshEvent      AuditEventType = "TOKEN_REFRESH"

	// Password events
	PasswordChangeEvent         AuditEventType = "PASSWORD_CHANGE"
	PasswordResetInitiatedEvent AuditEventType = "PASSWORD_RESET_INITIATED"
	PasswordResetCompletedEvent AuditEventType = "PASSWORD_RESET_COMPLETED"

	// Identity linking events
	IdentityLinkedEvent   AuditEventType = "IDENTITY_LINKED"
	IdentityUnlinkedEvent AuditEventType = "IDENTITY_UNLINKED"
)

// AuditEvent represents a security-relevant outcome
type AuditEvent struct {
	EventType AuditEventType         `json:"event_type"`
	Username  string                 `json:"username,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Reason    string                 `json:"reason,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Success   bool                   `json:"success"`
}

// AuditSink records security-relevant outcomes. Recording is best-effort:
// implementations must never block the primary operation or surface a
// failure to it.
type AuditSink interface {
	Record(ctx context.Context, event *AuditEvent)
}

// NewAuditEvent creates a new audit event with common fields populated
func NewAuditEvent(eventType AuditEventType, username string) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		Username:  username,
		Timestamp: time.Now().UTC(),
		Metadata:  make(map[string]interface{}),
		Success:   true,
	}
}

// WithFailure marks the event as failed and records the reason
func (e *AuditEvent) WithFailure(reason string) *AuditEvent {
	e.Success = false
	e.Reason = reason
	return e
}

// WithMetadata adds metadata to the event
func (e *AuditEvent) WithMetadata(key string, value interface{}) *AuditEvent {
	e.Metadata[key] = value
	return e
}
