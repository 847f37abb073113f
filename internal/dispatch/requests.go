package dispatch

import (
	"context"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// Request names. One handler per name, bound at startup.
const (
	LoginName          = "auth.login"
	LogoutName         = "auth.logout"
	RegisterName       = "auth.register"
	ChangePasswordName = "auth.change_password"
	RefreshTokenName   = "auth.refresh_token"
	ValidateTokenName  = "auth.validate_token"
	InitiateResetName  = "auth.password_reset.initiate"
	CompleteResetName  = "auth.password_reset.complete"
	VerifyAccountName  = "auth.verify_account"
)

// LoginRequest asks for a new session
type LoginRequest struct {
	Username string
	Password string
}

func (LoginRequest) RequestName() string { return LoginName }

// LogoutRequest revokes the user's refresh token
type LogoutRequest struct {
	Username string
}

func (LogoutRequest) RequestName() string { return LogoutName }

// RegisterRequest creates a new unverified account
type RegisterRequest struct {
	Username string
	Password string
}

func (RegisterRequest) RequestName() string { return RegisterName }

// ChangePasswordRequest rotates the password and revokes all sessions
type ChangePasswordRequest struct {
	Username        string
	CurrentPassword string
	NewPassword     string
}

func (ChangePasswordRequest) RequestName() string { return ChangePasswordName }

// RefreshTokenRequest exchanges a refresh token for a new access token
type RefreshTokenRequest struct {
	RefreshToken string
}

func (RefreshTokenRequest) RequestName() string { return RefreshTokenName }

// ValidateTokenRequest checks an access token
type ValidateTokenRequest struct {
	AccessToken string
}

func (ValidateTokenRequest) RequestName() string { return ValidateTokenName }

// InitiateResetRequest starts the out-of-band reset flow
type InitiateResetRequest struct {
	Username string
}

func (InitiateResetRequest) RequestName() string { return InitiateResetName }

// CompleteResetRequest finishes the reset flow with the delivered code
type CompleteResetRequest struct {
	Username    string
	Code        string
	NewPassword string
}

func (CompleteResetRequest) RequestName() string { return CompleteResetName }

// VerifyAccountRequest confirms account ownership with the code issued
// at registration
type VerifyAccountRequest struct {
	Username string
	Code     string
}

func (VerifyAccountRequest) RequestName() string { return VerifyAccountName }

// NewAuthRegistry builds the registry with every auth operation bound.
func NewAuthRegistry(authSvc domain.AuthService, guard domain.TokenGuard, resetSvc domain.PasswordResetService) (*Registry, error) {
	r := NewRegistry()

	bindings := map[string]HandlerFunc{
		LoginName: func(ctx context.Context, req Request) (interface{}, error) {
			q := req.(LoginRequest)
			return authSvc.Login(ctx, q.Username, q.Password)
		},
		LogoutName: func(ctx context.Context, req Request) (interface{}, error) {
			q := req.(LogoutRequest)
			return nil, authSvc.Logout(ctx, q.Username)
		},
		RegisterName: func(ctx context.Context, req Request) (interface{}, error) {
			q := req.(RegisterRequest)
			return authSvc.Register(ctx, q.Username, q.Password)
		},
		ChangePasswordName: func(ctx context.Context, req Request) (interface{}, error) {
			q := req.(ChangePasswordRequest)
			return nil, authSvc.ChangePassword(ctx, q.Username, q.CurrentPassword, q.NewPassword)
		},
		RefreshTokenName: func(ctx context.Context, req Request) (interface{}, error) {
			q := req.(RefreshTokenRequest)
			return authSvc.RefreshAccessToken(ctx, q.RefreshToken)
		},
		ValidateTokenName: func(ctx context.Context, req Request) (interface{}, error) {
			q := req.(ValidateTokenRequest)
			return guard.Validate(ctx, q.AccessToken)
		},
		InitiateResetName: func(ctx context.Context, req Request) (interface{}, error) {
			q := req.(InitiateResetRequest)
			return nil, resetSvc.Initiate(ctx, q.Username)
		},
		CompleteResetName: func(ctx context.Context, req Request) (interface{}, error) {
			q := req.(CompleteResetRequest)
			return nil, resetSvc.Complete(ctx, q.Username, q.Code, q.NewPassword)
		},
		VerifyAccountName: func(ctx context.Context, req Request) (interface{}, error) {
			q := req.(VerifyAccountRequest)
			return nil, authSvc.VerifyAccount(ctx, q.Username, q.Code)
		},
	}

	for name, handler := range bindings {
		if err := r.Register(name, handler); err != nil {
			return nil, err
		}
	}
	return r, nil
}
