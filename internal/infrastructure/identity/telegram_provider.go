package identity

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// TelegramProvider implements domain.IdentityProvider for Telegram.
// Linking stores the chat ID the notification channel later delivers to.
type TelegramProvider struct {
	userRepo domain.UserRepository
	audit    domain.AuditSink
	logger   *logrus.Entry
}

// NewTelegramProvider creates a new Telegram identity provider
func NewTelegramProvider(userRepo domain.UserRepository, audit domain.AuditSink, logger *logrus.Entry) domain.IdentityProvider {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &TelegramProvider{userRepo: userRepo, audit: audit, logger: logger}
}

// Provider implements domain.IdentityProvider
func (p *TelegramProvider) Provider() string { return "telegram" }

// Link implements domain.IdentityProvider
func (p *TelegramProvider) Link(ctx context.Context, username string, externalID int64, displayName string) error {
	user, err := p.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	user.TelegramLinked = true
	user.TelegramChatID = strconv.FormatInt(externalID, 10)
	user.TelegramUsername = displayName

	if err := p.userRepo.Update(ctx, user); err != nil {
		return err
	}

	p.logger.WithFields(logrus.Fields{
		"username": username,
		"chat_id":  externalID,
	}).Info("telegram account linked")
	p.audit.Record(ctx, domain.NewAuditEvent(domain.IdentityLinkedEvent, username).
		WithMetadata("provider", p.Provider()))
	return nil
}

// Unlink implements domain.IdentityProvider
func (p *TelegramProvider) Unlink(ctx context.Context, username string) error {
	user, err := p.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	user.TelegramLinked = false
	user.TelegramChatID = ""
	user.TelegramUsername = ""

	if err := p.userRepo.Update(ctx, user); err != nil {
		return err
	}

	p.audit.Record(ctx, domain.NewAuditEvent(domain.IdentityUnlinkedEvent, username).
		WithMetadata("provider", p.Provider()))
	return nil
}
