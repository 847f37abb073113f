package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestJWTServiceImpl_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService(testSecret, "brandauth", 15*time.Minute)

	token, err := svc.GenerateAccessToken("alice", 3)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, 3, claims.TokenVersion)
	assert.Greater(t, claims.ExpiresAt, claims.IssuedAt)
}

func TestJWTServiceImpl_ExpiredToken(t *testing.T) {
	svc := NewJWTService(testSecret, "brandauth", -time.Minute)

	token, err := svc.GenerateAccessToken("alice", 1)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestJWTServiceImpl_WrongSecret(t *testing.T) {
	svc := NewJWTService(testSecret, "brandauth", 15*time.Minute)
	other := NewJWTService("a-different-secret", "brandauth", 15*time.Minute)

	token, err := other.GenerateAccessToken("alice", 1)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTServiceImpl_GarbageToken(t *testing.T) {
	svc := NewJWTService(testSecret, "brandauth", 15*time.Minute)

	_, err := svc.ValidateAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTServiceImpl_VersionSurvivesRoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, "brandauth", 15*time.Minute)

	for _, version := range []int{1, 2, 17} {
		token, err := svc.GenerateAccessToken("alice", version)
		require.NoError(t, err)

		claims, err := svc.ValidateAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, version, claims.TokenVersion)
	}
}

func TestJWTServiceImpl_AccessTokenTTL(t *testing.T) {
	svc := NewJWTService(testSecret, "brandauth", 15*time.Minute)
	assert.Equal(t, 15*time.Minute, svc.AccessTokenTTL())
}
