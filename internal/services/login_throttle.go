package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// LoginThrottleImpl implements domain.LoginThrottle with Redis-backed
// per-username failure counters. INCR keeps racing failures from losing
// updates, and sharing the store means every instance of the service
// observes the same counters. Over-counting under extreme races only
// tightens protection; the counter never under-counts.
type LoginThrottleImpl struct {
	redisClient *redis.Client
	config      ThrottleConfig
}

// ThrottleConfig bundles lockout settings
type ThrottleConfig struct {
	Threshold     int
	LockoutWindow time.Duration
}

// NewLoginThrottle creates a new Redis-based login throttle
func NewLoginThrottle(redisClient *redis.Client, config ThrottleConfig) domain.LoginThrottle {
	return &LoginThrottleImpl{
		redisClient: redisClient,
		config:      config,
	}
}

func failureKey(username string) string {
	return "login:fail:" + username
}

// RecordFailure implements domain.LoginThrottle. Every failure refreshes
// the window, so reaching the threshold holds the lock for a full
// lockout window from the last attempt.
func (t *LoginThrottleImpl) RecordFailure(ctx context.Context, username string) error {
	key := failureKey(username)

	if err := t.redisClient.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to increment failure counter: %w", err)
	}
	if err := t.redisClient.Expire(ctx, key, t.config.LockoutWindow).Err(); err != nil {
		return fmt.Errorf("failed to set failure counter TTL: %w", err)
	}
	return nil
}

// RecordSuccess implements domain.LoginThrottle
func (t *LoginThrottleImpl) RecordSuccess(ctx context.Context, username string) error {
	return t.redisClient.Del(ctx, failureKey(username)).Err()
}

// IsLocked implements domain.LoginThrottle. The second return value is
// the time remaining until the lock expires.
func (t *LoginThrottleImpl) IsLocked(ctx context.Context, username string) (bool, time.Duration, error) {
	key := failureKey(username)

	count, err := t.redisClient.Get(ctx, key).Int()
	if err == redis.Nil {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, fmt.Errorf("failed to read failure counter: %w", err)
	}

	if count < t.config.Threshold {
		return false, 0, nil
	}

	ttl, err := t.redisClient.TTL(ctx, key).Result()
	if err != nil {
		return true, t.config.LockoutWindow, nil
	}
	if ttl < 0 {
		ttl = t.config.LockoutWindow
	}
	return true, ttl, nil
}

// RemainingAttempts implements domain.LoginThrottle
func (t *LoginThrottleImpl) RemainingAttempts(ctx context.Context, username string) (int, error) {
	count, err := t.redisClient.Get(ctx, failureKey(username)).Int()
	if err == redis.Nil {
		return t.config.Threshold, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read failure counter: %w", err)
	}

	remaining := t.config.Threshold - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
