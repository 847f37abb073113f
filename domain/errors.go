package domain

import (
	"errors"
	"fmt"
	"time"
)

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrAccountLocked      = errors.New("account temporarily locked")
	ErrNotVerified        = errors.New("account not verified")
)

// Password errors
var (
	ErrWeakPassword            = errors.New("password does not meet policy")
	ErrSameAsOldPassword       = errors.New("new password must differ from the current one")
	ErrInvalidVerificationCode = errors.New("invalid verification code")
)

// Password reset errors
var (
	ErrInvalidResetCode      = errors.New("invalid or expired reset code")
	ErrActiveResetExists     = errors.New("an active password reset request already exists")
	ErrNoNotificationChannel = errors.New("no notification channel linked to account")
	ErrResetDeliveryFailed   = errors.New("failed to deliver reset code")
)

// Token errors
var (
	ErrTokenInvalid         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token has expired")
	ErrTokenMalformed       = errors.New("malformed token")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)

// Dispatch errors
var (
	ErrNoHandler = errors.New("no handler registered for request")
)

// AccountLockedError carries the time remaining until login attempts are
// accepted again. It matches ErrAccountLocked under errors.Is.
type AccountLockedError struct {
	RetryAfter time.Duration
}

func (e *AccountLockedError) Error() string {
	return ErrAccountLocked.Error()
}

func (e *AccountLockedError) Is(target error) bool {
	return target == ErrAccountLocked
}

// InvalidCredentialsError carries the number of attempts left before
// lockout. Its message is identical to ErrInvalidCredentials so a caller
// cannot distinguish an unknown username from a wrong password.
type InvalidCredentialsError struct {
	RemainingAttempts int
}

func (e *InvalidCredentialsError) Error() string {
	return ErrInvalidCredentials.Error()
}

func (e *InvalidCredentialsError) Is(target error) bool {
	return target == ErrInvalidCredentials
}

// NotVerifiedError is returned on login for an unverified account and
// carries the outstanding verification code. The failure counter is not
// touched on this path.
type NotVerifiedError struct {
	Username         string
	VerificationCode string
}

func (e *NotVerifiedError) Error() string {
	return ErrNotVerified.Error()
}

func (e *NotVerifiedError) Is(target error) bool {
	return target == ErrNotVerified
}

// WeakPasswordError carries the minimum acceptable password length.
type WeakPasswordError struct {
	MinLength int
}

func (e *WeakPasswordError) Error() string {
	return fmt.Sprintf("password must be at least %d characters", e.MinLength)
}

func (e *WeakPasswordError) Is(target error) bool {
	return target == ErrWeakPassword
}
