package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// TokenGuardImpl implements domain.TokenGuard. An access token is valid
// only while the version it carries equals the user's current token
// version; bumping the version kills every outstanding token at once.
type TokenGuardImpl struct {
	userRepo domain.UserRepository
	tokenSvc domain.TokenService
	logger   *logrus.Entry
}

// NewTokenGuard creates a new token guard
func NewTokenGuard(userRepo domain.UserRepository, tokenSvc domain.TokenService, logger *logrus.Entry) domain.TokenGuard {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &TokenGuardImpl{
		userRepo: userRepo,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Validate implements domain.TokenGuard. Signature, expiry, then the
// version comparison against the user row; a stale version invalidates
// the token no matter how sound the signature is.
func (g *TokenGuardImpl) Validate(ctx context.Context, accessToken string) (*domain.TokenValidation, error) {
	claims, err := g.tokenSvc.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, err
	}

	user, err := g.userRepo.FindByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	if claims.TokenVersion != user.CurrentTokenVersion() {
		g.logger.WithFields(logrus.Fields{
			"username":        claims.Subject,
			"token_version":   claims.TokenVersion,
			"current_version": user.CurrentTokenVersion(),
		}).Warn("stale token version, forcing re-authentication")
		return nil, domain.ErrTokenInvalid
	}

	return &domain.TokenValidation{Valid: true, Username: user.Username, Role: user.Role}, nil
}

// BumpVersion implements domain.TokenGuard. The increment, the user row
// update and the refresh token purge commit as one unit before success
// is acknowledged, so a just-superseded token can never validate against
// the old version.
func (g *TokenGuardImpl) BumpVersion(ctx context.Context, user *domain.User) error {
	user.TokenVersion = user.CurrentTokenVersion() + 1

	if err := g.userRepo.BumpVersionAndRevoke(ctx, user); err != nil {
		return fmt.Errorf("failed to bump token version: %w", err)
	}

	g.logger.WithFields(logrus.Fields{
		"username":      user.Username,
		"token_version": user.TokenVersion,
	}).Info("token version bumped, refresh tokens revoked")
	return nil
}
