package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/flizwph/clothing-brand-sub001/domain"
	"github.com/flizwph/clothing-brand-sub001/internal/mocks"
)

func TestRegistry_Dispatch(t *testing.T) {
	r := NewRegistry()

	handled := false
	err := r.Register(LoginName, func(ctx context.Context, req Request) (interface{}, error) {
		handled = true
		q := req.(LoginRequest)
		if q.Username != "alice" {
			t.Errorf("expected username alice, got %q", q.Username)
		}
		return "session", nil
	})
	if err != nil {
		t.Fatalf("unexpected registration error: %v", err)
	}

	result, err := r.Dispatch(context.Background(), LoginRequest{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("unexpected dispatch error: %v", err)
	}
	if !handled {
		t.Error("expected handler to run")
	}
	if result != "session" {
		t.Errorf("expected handler result to pass through, got %v", result)
	}
}

func TestRegistry_Dispatch_NoHandler(t *testing.T) {
	r := NewRegistry()

	_, err := r.Dispatch(context.Background(), LogoutRequest{Username: "alice"})
	if !errors.Is(err, domain.ErrNoHandler) {
		t.Fatalf("expected ErrNoHandler, got %v", err)
	}
}

func TestRegistry_Register_Duplicate(t *testing.T) {
	r := NewRegistry()

	noop := func(ctx context.Context, req Request) (interface{}, error) { return nil, nil }
	if err := r.Register(LoginName, noop); err != nil {
		t.Fatalf("unexpected error on first registration: %v", err)
	}
	if err := r.Register(LoginName, noop); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestNewAuthRegistry_BindsEveryOperation(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	guard := mocks.NewMockTokenGuard()
	resetSvc := mocks.NewMockPasswordResetService()

	guard.ValidateFunc = func(ctx context.Context, accessToken string) (*domain.TokenValidation, error) {
		return &domain.TokenValidation{Valid: true, Username: "alice"}, nil
	}

	r, err := NewAuthRegistry(authSvc, guard, resetSvc)
	if err != nil {
		t.Fatalf("unexpected error building registry: %v", err)
	}

	requests := []Request{
		LoginRequest{Username: "alice", Password: "pw"},
		LogoutRequest{Username: "alice"},
		RegisterRequest{Username: "bob", Password: "long-enough-pw"},
		ChangePasswordRequest{Username: "alice", CurrentPassword: "old", NewPassword: "new-password"},
		ValidateTokenRequest{AccessToken: "token"},
		InitiateResetRequest{Username: "alice"},
		CompleteResetRequest{Username: "alice", Code: "code", NewPassword: "new-password"},
		VerifyAccountRequest{Username: "bob", Code: "123456"},
	}

	for _, req := range requests {
		if _, err := r.Dispatch(context.Background(), req); err != nil {
			t.Errorf("dispatch %s: unexpected error: %v", req.RequestName(), err)
		}
	}

	// The refresh binding forwards the service's error untouched.
	_, err = r.Dispatch(context.Background(), RefreshTokenRequest{RefreshToken: "never-issued"})
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid from refresh handler, got %v", err)
	}
}
