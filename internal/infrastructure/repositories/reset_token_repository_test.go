package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

func createResetRepoForTest(t *testing.T) (domain.PasswordResetTokenRepository, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewResetTokenRepository(client), mr
}

func TestResetTokenRepositoryImpl_InsertAndFind(t *testing.T) {
	repo, _ := createResetRepoForTest(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, "alice", "code-1", 30*time.Minute))

	username, err := repo.FindUsername(ctx, "code-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestResetTokenRepositoryImpl_SingleActiveTokenPerUser(t *testing.T) {
	repo, _ := createResetRepoForTest(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, "alice", "code-1", 30*time.Minute))

	err := repo.Insert(ctx, "alice", "code-2", 30*time.Minute)
	assert.ErrorIs(t, err, domain.ErrActiveResetExists)

	// The losing code was never stored.
	_, err = repo.FindUsername(ctx, "code-2")
	assert.ErrorIs(t, err, domain.ErrInvalidResetCode)

	// A different user is unaffected.
	require.NoError(t, repo.Insert(ctx, "bob", "code-3", 30*time.Minute))
}

func TestResetTokenRepositoryImpl_ExpiredCodeIsAbsent(t *testing.T) {
	repo, mr := createResetRepoForTest(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, "alice", "code-1", 30*time.Minute))

	mr.FastForward(30*time.Minute + time.Second)

	_, err := repo.FindUsername(ctx, "code-1")
	assert.ErrorIs(t, err, domain.ErrInvalidResetCode)

	// Expiry frees the slot for a new request.
	require.NoError(t, repo.Insert(ctx, "alice", "code-2", 30*time.Minute))
}

func TestResetTokenRepositoryImpl_DeleteFreesSlot(t *testing.T) {
	repo, _ := createResetRepoForTest(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, "alice", "code-1", 30*time.Minute))
	require.NoError(t, repo.Delete(ctx, "code-1"))

	_, err := repo.FindUsername(ctx, "code-1")
	assert.ErrorIs(t, err, domain.ErrInvalidResetCode)

	require.NoError(t, repo.Insert(ctx, "alice", "code-2", 30*time.Minute))
}

func TestResetTokenRepositoryImpl_DeleteUnknownCodeIsNoop(t *testing.T) {
	repo, _ := createResetRepoForTest(t)

	assert.NoError(t, repo.Delete(context.Background(), "never-stored"))
}
