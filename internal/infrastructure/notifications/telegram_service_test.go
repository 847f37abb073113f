package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sendFunc func(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	sent     []*bot.SendMessageParams
}

func (f *fakeSender) SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	f.sent = append(f.sent, params)
	if f.sendFunc != nil {
		return f.sendFunc(ctx, params)
	}
	return &models.Message{}, nil
}

func TestTelegramServiceImpl_Deliver(t *testing.T) {
	sender := &fakeSender{}
	svc := newTelegramServiceWithSender(sender, 5*time.Second, nil)

	err := svc.Deliver(context.Background(), "123456789", "your code is 42")
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "123456789", sender.sent[0].ChatID)
	assert.Equal(t, "your code is 42", sender.sent[0].Text)
}

func TestTelegramServiceImpl_Deliver_SendFailure(t *testing.T) {
	sender := &fakeSender{
		sendFunc: func(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
			return nil, errors.New("chat not found")
		},
	}
	svc := newTelegramServiceWithSender(sender, 5*time.Second, nil)

	err := svc.Deliver(context.Background(), "123456789", "your code is 42")
	assert.Error(t, err)
}

func TestTelegramServiceImpl_Deliver_Timeout(t *testing.T) {
	sender := &fakeSender{
		sendFunc: func(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Second):
				return &models.Message{}, nil
			}
		},
	}
	svc := newTelegramServiceWithSender(sender, 10*time.Millisecond, nil)

	err := svc.Deliver(context.Background(), "123456789", "your code is 42")
	assert.Error(t, err, "a slow API call must be cut off at the timeout")
}

func TestTelegramServiceImpl_Deliver_Unconfigured(t *testing.T) {
	svc, err := NewTelegramService("", 5*time.Second, nil)
	require.NoError(t, err)

	// Log-only mode accepts every message.
	assert.NoError(t, svc.Deliver(context.Background(), "123456789", "your code is 42"))
}
