package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// ResetConfig bundles password reset settings
type ResetConfig struct {
	TokenTTL          time.Duration
	MinPasswordLength int
}

// PasswordResetServiceImpl implements domain.PasswordResetService. The
// reset code travels out-of-band over the user's linked notification
// channel; persistence and delivery form one logical unit, with a
// compensating delete when delivery fails.
type PasswordResetServiceImpl struct {
	userRepo    domain.UserRepository
	resetRepo   domain.PasswordResetTokenRepository
	passwordSvc domain.PasswordService
	guard       domain.TokenGuard
	notifier    domain.NotificationChannel
	audit       domain.AuditSink
	logger      *logrus.Entry
	config      ResetConfig
}

// NewPasswordResetService creates a new password reset service
func NewPasswordResetService(
	userRepo domain.UserRepository,
	resetRepo domain.PasswordResetTokenRepository,
	passwordSvc domain.PasswordService,
	guard domain.TokenGuard,
	notifier domain.NotificationChannel,
	audit domain.AuditSink,
	logger *logrus.Entry,
	config ResetConfig,
) domain.PasswordResetService {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	if config.TokenTTL <= 0 {
		config.TokenTTL = 30 * time.Minute
	}
	return &PasswordResetServiceImpl{
		userRepo:    userRepo,
		resetRepo:   resetRepo,
		passwordSvc: passwordSvc,
		guard:       guard,
		notifier:    notifier,
		audit:       audit,
		logger:      logger,
		config:      config,
	}
}

// Initiate implements domain.PasswordResetService
func (s *PasswordResetServiceImpl) Initiate(ctx context.Context, username string) error {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	if !user.Verified {
		return domain.ErrNotVerified
	}

	if !user.TelegramLinked || user.TelegramChatID == "" {
		s.audit.Record(ctx, domain.NewAuditEvent(domain.PasswordResetInitiatedEvent, username).
			WithFailure("no notification channel"))
		return domain.ErrNoNotificationChannel
	}

	code, err := generateResetCode()
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}

	// Insert is atomic with the active-token check; a concurrent
	// initiation loses with ErrActiveResetExists.
	if err := s.resetRepo.Insert(ctx, username, code, s.config.TokenTTL); err != nil {
		if errors.Is(err, domain.ErrActiveResetExists) {
			s.audit.Record(ctx, domain.NewAuditEvent(domain.PasswordResetInitiatedEvent, username).
				WithFailure("active reset request exists"))
			return domain.ErrActiveResetExists
		}
		return err
	}

	message := fmt.Sprintf(
		"Your password reset code is: %s. Valid for %d minutes. If you did not request this, ignore this message.",
		code, int(s.config.TokenTTL.Minutes()),
	)
	if err := s.notifier.Deliver(ctx, user.TelegramChatID, message); err != nil {
		// Roll the token back so the user can retry immediately.
		if derr := s.resetRepo.Delete(ctx, code); derr != nil {
			s.logger.WithError(derr).Error("failed to roll back undelivered reset code")
		}
		s.logger.WithError(err).WithField("username", username).Error("reset code delivery failed")
		s.audit.Record(ctx, domain.NewAuditEvent(domain.PasswordResetInitiatedEvent, username).
			WithFailure("delivery failed"))
		return fmt.Errorf("%w: %v", domain.ErrResetDeliveryFailed, err)
	}

	s.logger.WithField("username", username).Info("password reset code delivered")
	s.audit.Record(ctx, domain.NewAuditEvent(domain.PasswordResetInitiatedEvent, username))
	return nil
}

// Complete implements domain.PasswordResetService
func (s *PasswordResetServiceImpl) Complete(ctx context.Context, username, code, newPassword string) error {
	owner, err := s.resetRepo.FindUsername(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidResetCode) {
			s.audit.Record(ctx, domain.NewAuditEvent(domain.PasswordResetCompletedEvent, username).
				WithFailure("invalid reset code"))
			return domain.ErrInvalidResetCode
		}
		return err
	}
	if owner != username {
		s.audit.Record(ctx, domain.NewAuditEvent(domain.PasswordResetCompletedEvent, username).
			WithFailure("reset code belongs to another account"))
		return domain.ErrInvalidResetCode
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	if len(newPassword) < s.config.MinPasswordLength {
		return &domain.WeakPasswordError{MinLength: s.config.MinPasswordLength}
	}

	if s.passwordSvc.Verify(user.PasswordHash, newPassword) {
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

	// Consume the code only after the new password is committed.
	if err := s.resetRepo.Delete(ctx, code); err != nil {
		s.logger.WithError(err).Warn("failed to consume reset code")
	}

	if user.TelegramChatID != "" {
		if err := s.notifier.Deliver(ctx, user.TelegramChatID,
			"Your password has been changed. If this was not you, contact support immediately."); err != nil {
			s.logger.WithError(err).Warn("failed to send password change notice")
		}
	}

	s.logger.WithField("username", username).Info("password reset completed, all tokens invalidated")
	s.audit.Record(ctx, domain.NewAuditEvent(domain.PasswordResetCompletedEvent, username))
	return nil
}

// generateResetCode returns a 128-bit random code in hex.
func generateResetCode() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
