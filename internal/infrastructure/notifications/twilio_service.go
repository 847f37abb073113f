package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// TwilioServiceImpl implements domain.NotificationChannel over SMS for
// accounts that link a phone number instead of a chat. The identity is
// the destination phone number.
type TwilioServiceImpl struct {
	client     *twilio.RestClient
	fromNumber string
	logger     *logrus.Entry
	timeout    time.Duration
}

// NewTwilioService creates a new Twilio notification channel
func NewTwilioService(accountSID, authToken, fromNumber string, timeout time.Duration, logger *logrus.Entry) domain.NotificationChannel {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioServiceImpl{
		client:     client,
		fromNumber: fromNumber,
		logger:     logger,
		timeout:    timeout,
	}
}

// Deliver implements domain.NotificationChannel
func (t *TwilioServiceImpl) Deliver(ctx context.Context, identity, message string) error {
	// If credentials are not configured, log instead of sending
	if t.fromNumber == "" {
		t.logger.WithFields(logrus.Fields{
			"to":   identity,
			"text": message,
		}).Info("twilio not configured, logging message instead")
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(identity)
	params.SetFrom(t.fromNumber)
	params.SetBody(message)

	done := make(chan error, 1)
	go func() {
		_, err := t.client.Api.CreateMessage(params)
		done <- err
	}()

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send SMS: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("SMS delivery timed out: %w", ctx.Err())
	}
}
