package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// AuthConfig bundles the session issuance settings
type AuthConfig struct {
	RefreshTokenTTL        time.Duration
	MinPasswordLength      int
	VerificationCodeLength int
	DefaultRole            string
}

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	refreshRepo domain.RefreshTokenRepository
	throttle    domain.LoginThrottle
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	guard       domain.TokenGuard
	audit       domain.AuditSink
	logger      *logrus.Entry
	config      AuthConfig
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	refreshRepo domain.RefreshTokenRepository,
	throttle domain.LoginThrottle,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	guard domain.TokenGuard,
	audit domain.AuditSink,
	logger *logrus.Entry,
	config AuthConfig,
) domain.AuthService {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	if config.DefaultRole == "" {
		config.DefaultRole = "customer"
	}
	if config.VerificationCodeLength < 1 {
		config.VerificationCodeLength = 6
	}
	return &AuthServiceImpl{
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		throttle:    throttle,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		guard:       guard,
		audit:       audit,
		logger:      logger,
		config:      config,
	}
}

// Register implements domain.AuthService. New accounts start unverified
// at token version 1.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if existing, err := s.userRepo.FindByUsername(ctx, username); err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	if len(password) < s.config.MinPasswordLength {
		return nil, &domain.WeakPasswordError{MinLength: s.config.MinPasswordLength}
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := generateNumericCode(s.config.VerificationCodeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}

	user := &domain.User{
		Username:         username,
		PasswordHash:     hashedPassword,
		Role:             s.config.DefaultRole,
		Active:           true,
		Verified:         false,
		VerificationCode: code,
		TokenVersion:     1,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithField("username", username).Info("user registered")
	s.audit.Record(ctx, domain.NewAuditEvent(domain.UserRegisteredEvent, username))

	return user, nil
}

// Login implements domain.AuthService. The pipeline order is fixed:
// throttle, lookup, active, password, verified. A locked username never
// reaches the store, and unverified or disabled accounts never receive
// tokens.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	locked, retryAfter, err := s.throttle.IsLocked(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check login throttle: %w", err)
	}
	if locked {
		s.logger.WithField("username", username).Warn("login rejected, account locked")
		s.audit.Record(ctx, domain.NewAuditEvent(domain.AccountLockedEvent, username).
			WithFailure("too many failed attempts").
			WithMetadata("retry_after_seconds", int64(retryAfter.Seconds())))
		return nil, &domain.AccountLockedError{RetryAfter: retryAfter}
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Counted like a wrong password so unknown usernames are
			// indistinguishable from known ones.
			if terr := s.throttle.RecordFailure(ctx, username); terr != nil {
				s.logger.WithError(terr).Warn("failed to record login failure")
			}
			s.audit.Record(ctx, domain.NewAuditEvent(domain.LoginFailureEvent, username).
				WithFailure("user not found"))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Active {
		s.audit.Record(ctx, domain.NewAuditEvent(domain.LoginFailureEvent, username).
			WithFailure("account disabled"))
		return nil, domain.ErrAccountDisabled
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		if terr := s.throttle.RecordFailure(ctx, username); terr != nil {
			s.logger.WithError(terr).Warn("failed to record login failure")
		}
		remaining, terr := s.throttle.RemainingAttempts(ctx, username)
		if terr != nil {
			s.logger.WithError(terr).Warn("failed to read remaining attempts")
		}
		s.audit.Record(ctx, domain.NewAuditEvent(domain.LoginFailureEvent, username).
			WithFailure("wrong password").
			WithMetadata("attempts_left", remaining))
		if remaining <= 1 {
			s.audit.Record(ctx, domain.NewAuditEvent(domain.BruteForceAttemptEvent, username).
				WithFailure("lockout imminent"))
		}
		return nil, &domain.InvalidCredentialsError{RemainingAttempts: remaining}
	}

	if !user.Verified {
		// Not counted as a failure: the credentials were correct.
		s.audit.Record(ctx, domain.NewAuditEvent(domain.LoginFailureEvent, username).
			WithFailure("account not verified"))
		return nil, &domain.NotVerifiedError{
			Username:         user.Username,
			VerificationCode: user.VerificationCode,
		}
	}

	if err := s.throttle.RecordSuccess(ctx, username); err != nil {
		s.logger.WithError(err).Warn("failed to clear login failures")
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.Username, user.CurrentTokenVersion())
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken := uuid.NewString()
	expiresAt := time.Now().Add(s.config.RefreshTokenTTL)
	if err := s.refreshRepo.ReplaceForUser(ctx, user.ID, refreshToken, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.WithError(err).Warn("failed to update last login")
	}

	s.logger.WithField("username", username).Info("login successful")
	s.audit.Record(ctx, domain.NewAuditEvent(domain.LoginSuccessEvent, username))

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.tokenSvc.AccessTokenTTL().Seconds()),
	}, nil
}

// RefreshAccessToken implements domain.AuthService. The new access token
// carries the user's current version, so tokens minted after a revoke
// are valid while older ones stay dead.
func (s *AuthServiceImpl) RefreshAccessToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	stored, err := s.refreshRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrRefreshTokenNotFound) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, err
	}

	if stored.Expired(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	user, err := s.userRepo.FindByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}

	if !user.Active {
		// A deactivated account must not keep minting access tokens off
		// a refresh token issued while it was still active.
		s.audit.Record(ctx, domain.NewAuditEvent(domain.TokenRefreshEvent, user.Username).
			WithFailure("account disabled"))
		return nil, domain.ErrAccountDisabled
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.Username, user.CurrentTokenVersion())
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.audit.Record(ctx, domain.NewAuditEvent(domain.TokenRefreshEvent, user.Username))

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.tokenSvc.AccessTokenTTL().Seconds()),
	}, nil
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, username string) error {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	if err := s.refreshRepo.DeleteForUser(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}

	s.audit.Record(ctx, domain.NewAuditEvent(domain.UserLogoutEvent, username))
	return nil
}

// ChangePassword implements domain.AuthService. A successful change
// bumps the token version and purges refresh tokens before returning.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	if !s.passwordSvc.Verify(user.PasswordHash, currentPassword) {
		s.audit.Record(ctx, domain.NewAuditEvent(domain.PasswordChangeEvent, username).
			WithFailure("current password incorrect"))
		return domain.ErrInvalidCredentials
	}

	if len(newPassword) < s.config.MinPasswordLength {
		s.audit.Record(ctx, domain.NewAuditEvent(domain.PasswordChangeEvent, username).
			WithFailure("new password too short"))
		return &domain.WeakPasswordError{MinLength: s.config.MinPasswordLength}
	}

	if s.passwordSvc.Verify(user.PasswordHash, newPassword) {
		s.audit.Record(ctx, domain.NewAuditEvent(domain.PasswordChangeEvent, username).
			WithFailure("new password matches current"))
		return domain.ErrSameAsOldPassword
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hashedPassword
	user.UpdatedAt = time.Now()

	if err := s.guard.BumpVersion(ctx, user); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	s.logger.WithField("username", username).Info("password changed, all tokens invalidated")
	s.audit.Record(ctx, domain.NewAuditEvent(domain.PasswordChangeEvent, username))
	return nil
}

// VerifyAccount implements domain.AuthService
func (s *AuthServiceImpl) VerifyAccount(ctx context.Context, username, code string) error {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	if user.Verified {
		return nil
	}

	if code == "" || code != user.VerificationCode {
		s.audit.Record(ctx, domain.NewAuditEvent(domain.AccountVerifiedEvent, username).
			WithFailure("wrong verification code"))
		return domain.ErrInvalidVerificationCode
	}

	user.Verified = true
	user.VerificationCode = ""
	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.audit.Record(ctx, domain.NewAuditEvent(domain.AccountVerifiedEvent, username))
	return nil
}

// generateNumericCode generates a cryptographically secure numeric code
func generateNumericCode(length int) (string, error) {
	digits := make([]byte, length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}
	return string(digits), nil
}
