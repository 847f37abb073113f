package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/sirupsen/logrus"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// messageSender is the slice of *bot.Bot the channel needs; tests swap in
// a fake.
type messageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// TelegramServiceImpl implements domain.NotificationChannel by sending
// chat messages through the Telegram Bot API. The identity is the linked
// chat ID stored on the user record.
type TelegramServiceImpl struct {
	sender  messageSender
	logger  *logrus.Entry
	timeout time.Duration
}

// NewTelegramService creates a Telegram notification channel. When the
// token is empty (local development) the channel logs messages instead of
// sending them.
func NewTelegramService(token string, timeout time.Duration, logger *logrus.Entry) (domain.NotificationChannel, error) {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	if token == "" {
		return &TelegramServiceImpl{logger: logger, timeout: timeout}, nil
	}

	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot client: %w", err)
	}
	return &TelegramServiceImpl{sender: b, logger: logger, timeout: timeout}, nil
}

// newTelegramServiceWithSender is used by tests.
func newTelegramServiceWithSender(sender messageSender, timeout time.Duration, logger *logrus.Entry) *TelegramServiceImpl {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &TelegramServiceImpl{sender: sender, logger: logger, timeout: timeout}
}

// Deliver implements domain.NotificationChannel. The call is bounded by
// the configured timeout so a slow Telegram API cannot stall the caller.
func (t *TelegramServiceImpl) Deliver(ctx context.Context, identity, message string) error {
	if t.sender == nil {
		t.logger.WithFields(logrus.Fields{
			"chat_id": identity,
			"text":    message,
		}).Info("telegram not configured, logging message instead")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	_, err := t.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: identity,
		Text:   message,
	})
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}
