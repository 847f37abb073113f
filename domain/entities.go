package domain

import "time"

// User represents the security view of an account
type User struct {
	ID               uint
	Username         string
	PasswordHash     string `gorm:"column:password_hash"`
	Role             string
	Active           bool
	Verified         bool
	VerificationCode string
	TokenVersion     int
	TelegramLinked   bool
	TelegramChatID   string
	TelegramUsername string
	LastLogin        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CurrentTokenVersion returns the user's token version, treating the
// zero value of a legacy row as version 1.
func (u *User) CurrentTokenVersion() int {
	if u.TokenVersion < 1 {
		return 1
	}
	return u.TokenVersion
}

// AuthRequest represents authentication credentials
type AuthRequest struct {
	Username string
	Password string
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// RefreshToken is an opaque server-stored token; at most one live token
// exists per user.
type RefreshToken struct {
	ID        uint
	UserID    uint
	Token     string
	ExpiresAt time.Time
}

// Expired reports whether the token is past its expiry.
func (t *RefreshToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// PasswordResetToken is a single-use, time-bounded reset code
type PasswordResetToken struct {
	Code      string
	Username  string
	ExpiresAt time.Time
}

// TokenClaims represents access token claims
type TokenClaims struct {
	Subject      string `json:"sub"`
	TokenVersion int    `json:"token_version"`
	IssuedAt     int64  `json:"iat"`
	ExpiresAt    int64  `json:"exp"`
}

// TokenValidation is the outcome of validating an access token
type TokenValidation struct {
	Valid    bool
	Username string
	Role     string
}
