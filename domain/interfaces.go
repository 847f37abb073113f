package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations. BumpVersionAndRevoke
// persists the user (including an already-incremented token version) and
// deletes all of the user's refresh tokens in a single transaction; it
// must not return before the transaction commits.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	BumpVersionAndRevoke(ctx context.Context, user *User) error
}

// RefreshTokenRepository stores opaque refresh tokens. ReplaceForUser
// upserts so that a user never holds more than one live token.
type RefreshTokenRepository interface {
	ReplaceForUser(ctx context.Context, userID uint, token string, expiresAt time.Time) error
	FindByToken(ctx context.Context, token string) (*RefreshToken, error)
	DeleteForUser(ctx context.Context, userID uint) error
}

// PasswordResetTokenRepository stores reset codes. Insert must be atomic
// with the active-token existence check and return ErrActiveResetExists
// when the username already holds a live code.
type PasswordResetTokenRepository interface {
	Insert(ctx context.Context, username, code string, ttl time.Duration) error
	FindUsername(ctx context.Context, code string) (string, error)
	Delete(ctx context.Context, code string) error
}

// LoginThrottle counts failed login attempts per username and locks the
// username out once the failure threshold is reached.
type LoginThrottle interface {
	RecordFailure(ctx context.Context, username string) error
	RecordSuccess(ctx context.Context, username string) error
	IsLocked(ctx context.Context, username string) (bool, time.Duration, error)
	RemainingAttempts(ctx context.Context, username string) (int, error)
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, username, password string) (*User, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, username string) error
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error
	VerifyAccount(ctx context.Context, username, code string) error
}

// TokenGuard validates access tokens against the user's current token
// version and drives global invalidation.
type TokenGuard interface {
	Validate(ctx context.Context, accessToken string) (*TokenValidation, error)
	BumpVersion(ctx context.Context, user *User) error
}

// PasswordResetService coordinates the out-of-band reset flow
type PasswordResetService interface {
	Initiate(ctx context.Context, username string) error
	Complete(ctx context.Context, username, code, newPassword string) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines access token operations. Refresh tokens are
// opaque and server-stored, so only access tokens are signed.
type TokenService interface {
	GenerateAccessToken(username string, tokenVersion int) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	AccessTokenTTL() time.Duration
}

// NotificationChannel delivers short out-of-band messages (verification
// and reset codes) to a linked external identity.
type NotificationChannel interface {
	Deliver(ctx context.Context, identity, message string) error
}

// IdentityProvider links an external identity (Telegram, Discord, VK)
// to a user account. One implementation per provider.
type IdentityProvider interface {
	Provider() string
	Link(ctx context.Context, username string, externalID int64, displayName string) error
	Unlink(ctx context.Context, username string) error
}

// PolicyService defines authorization policy operations. SeedDefaults
// installs the baseline role policies on an empty store and is a no-op
// otherwise.
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
	SeedDefaults() (bool, error)
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
