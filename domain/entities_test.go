package domain

import (
	"testing"
	"time"
)

func TestUser_CurrentTokenVersion(t *testing.T) {
	tests := []struct {
		name     string
		user     *User
		expected int
	}{
		{
			name:     "explicit version",
			user:     &User{TokenVersion: 3},
			expected: 3,
		},
		{
			name:     "legacy row without version",
			user:     &User{TokenVersion: 0},
			expected: 1,
		},
		{
			name:     "version one",
			user:     &User{TokenVersion: 1},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.CurrentTokenVersion(); got != tt.expected {
				t.Errorf("expected version %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestRefreshToken_Expired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		token   *RefreshToken
		expired bool
	}{
		{
			name:    "live token",
			token:   &RefreshToken{Token: "t1", ExpiresAt: now.Add(time.Hour)},
			expired: false,
		},
		{
			name:    "expired token",
			token:   &RefreshToken{Token: "t2", ExpiresAt: now.Add(-time.Minute)},
			expired: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.Expired(now); got != tt.expired {
				t.Errorf("expected expired=%v, got %v", tt.expired, got)
			}
		})
	}
}

func TestNewAuditEvent(t *testing.T) {
	ev := NewAuditEvent(LoginFailureEvent, "alice")

	if ev.EventType != LoginFailureEvent {
		t.Errorf("expected event type %s, got %s", LoginFailureEvent, ev.EventType)
	}
	if ev.Username != "alice" {
		t.Errorf("expected username alice, got %s", ev.Username)
	}
	if !ev.Success {
		t.Error("new events should default to success")
	}
	if ev.Timestamp.IsZero() {
		t.Error("timestamp should be populated")
	}

	ev.WithFailure("wrong password").WithMetadata("attempts_left", 3)
	if ev.Success {
		t.Error("WithFailure should clear the success flag")
	}
	if ev.Reason != "wrong password" {
		t.Errorf("expected reason to be recorded, got %q", ev.Reason)
	}
	if ev.Metadata["attempts_left"] != 3 {
		t.Error("metadata should be recorded")
	}
}
