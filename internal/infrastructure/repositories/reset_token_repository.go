package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// ResetTokenRepositoryImpl implements domain.PasswordResetTokenRepository
// using Redis. Two keys per request: username -> code and code -> username,
// both under the same TTL. SetNX on the username key makes the
// check-then-insert atomic, so two concurrent initiations cannot both
// succeed. Expiry is handled by Redis; an expired code is simply absent.
type ResetTokenRepositoryImpl struct {
	client *redis.Client
}

// NewResetTokenRepository creates a new reset token repository
func NewResetTokenRepository(client *redis.Client) domain.PasswordResetTokenRepository {
	return &ResetTokenRepositoryImpl{client: client}
}

func userKey(username string) string { return "pwdreset:user:" + username }
func codeKey(code string) string     { return "pwdreset:code:" + code }

// Insert implements domain.PasswordResetTokenRepository
func (r *ResetTokenRepositoryImpl) Insert(ctx context.Context, username, code string, ttl time.Duration) error {
	ok, err := r.client.SetNX(ctx, userKey(username), code, ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to reserve reset slot: %w", err)
	}
	if !ok {
		return domain.ErrActiveResetExists
	}

	if err := r.client.Set(ctx, codeKey(code), username, ttl).Err(); err != nil {
		// Release the slot so the user can retry
		r.client.Del(ctx, userKey(username))
		return fmt.Errorf("failed to store reset code: %w", err)
	}
	return nil
}

// FindUsername implements domain.PasswordResetTokenRepository
func (r *ResetTokenRepositoryImpl) FindUsername(ctx context.Context, code string) (string, error) {
	username, err := r.client.Get(ctx, codeKey(code)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrInvalidResetCode
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up reset code: %w", err)
	}
	return username, nil
}

// Delete implements domain.PasswordResetTokenRepository. Deleting the
// code consumes it and frees the username's slot.
func (r *ResetTokenRepositoryImpl) Delete(ctx context.Context, code string) error {
	username, err := r.client.Get(ctx, codeKey(code)).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up reset code: %w", err)
	}
	return r.client.Del(ctx, codeKey(code), userKey(username)).Err()
}
