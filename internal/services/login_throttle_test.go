package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

func createThrottleForTest(t *testing.T, config ThrottleConfig) (domain.LoginThrottle, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewLoginThrottle(client, config), mr
}

func TestLoginThrottleImpl_LocksAfterThreshold(t *testing.T) {
	throttle, _ := createThrottleForTest(t, ThrottleConfig{
		Threshold:     5,
		LockoutWindow: 10 * time.Minute,
	})
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, throttle.RecordFailure(ctx, "alice"))

		locked, _, err := throttle.IsLocked(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, locked, "failure %d must not lock yet", i+1)
	}

	remaining, err := throttle.RemainingAttempts(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)

	require.NoError(t, throttle.RecordFailure(ctx, "alice"))

	locked, retryAfter, err := throttle.IsLocked(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, locked)
	assert.Greater(t, retryAfter, time.Duration(0))
	assert.LessOrEqual(t, retryAfter, 10*time.Minute)

	remaining, err = throttle.RemainingAttempts(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
}

func TestLoginThrottleImpl_WindowExpiryUnlocks(t *testing.T) {
	throttle, mr := createThrottleForTest(t, ThrottleConfig{
		Threshold:     3,
		LockoutWindow: 10 * time.Minute,
	})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, throttle.RecordFailure(ctx, "alice"))
	}

	locked, _, err := throttle.IsLocked(ctx, "alice")
	require.NoError(t, err)
	require.True(t, locked)

	mr.FastForward(10*time.Minute + time.Second)

	locked, _, err = throttle.IsLocked(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, locked, "lock must expire with the window")

	remaining, err := throttle.RemainingAttempts(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, remaining, "expired counter restores all attempts")
}

func TestLoginThrottleImpl_EachFailureRefreshesWindow(t *testing.T) {
	throttle, mr := createThrottleForTest(t, ThrottleConfig{
		Threshold:     3,
		LockoutWindow: 10 * time.Minute,
	})
	ctx := context.Background()

	require.NoError(t, throttle.RecordFailure(ctx, "alice"))
	mr.FastForward(9 * time.Minute)
	require.NoError(t, throttle.RecordFailure(ctx, "alice"))
	mr.FastForward(9 * time.Minute)
	require.NoError(t, throttle.RecordFailure(ctx, "alice"))

	// 18 minutes since the first failure, but the window restarts on
	// every failure, so all three are still counted.
	locked, _, err := throttle.IsLocked(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, locked)
}

func TestLoginThrottleImpl_RecordSuccessClearsCounter(t *testing.T) {
	throttle, _ := createThrottleForTest(t, ThrottleConfig{
		Threshold:     3,
		LockoutWindow: 10 * time.Minute,
	})
	ctx := context.Background()

	require.NoError(t, throttle.RecordFailure(ctx, "alice"))
	require.NoError(t, throttle.RecordFailure(ctx, "alice"))
	require.NoError(t, throttle.RecordSuccess(ctx, "alice"))

	remaining, err := throttle.RemainingAttempts(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, remaining)
}

func TestLoginThrottleImpl_CountersAreIndependentPerUsername(t *testing.T) {
	throttle, _ := createThrottleForTest(t, ThrottleConfig{
		Threshold:     2,
		LockoutWindow: 10 * time.Minute,
	})
	ctx := context.Background()

	require.NoError(t, throttle.RecordFailure(ctx, "alice"))
	require.NoError(t, throttle.RecordFailure(ctx, "alice"))

	locked, _, err := throttle.IsLocked(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, locked)

	locked, _, err = throttle.IsLocked(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, locked, "bob's counter is untouched by alice's failures")
}

// Concurrent failures must never lose an update; the count may only
// match or exceed the number of attempts.
func TestLoginThrottleImpl_ConcurrentFailuresNeverUndercount(t *testing.T) {
	throttle, _ := createThrottleForTest(t, ThrottleConfig{
		Threshold:     50,
		LockoutWindow: 10 * time.Minute,
	})
	ctx := context.Background()

	const attempts = 20
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = throttle.RecordFailure(ctx, "alice")
		}()
	}
	wg.Wait()

	remaining, err := throttle.RemainingAttempts(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 50-attempts, remaining)
}
