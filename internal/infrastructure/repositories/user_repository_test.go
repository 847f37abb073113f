package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

func TestUserRepositoryImpl_DomainMapping(t *testing.T) {
	repo := &UserRepositoryImpl{}

	lastLogin := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 7, 15, 9, 30, 0, 0, time.UTC)
	user := &domain.User{
		ID:               42,
		Username:         "alice",
		PasswordHash:     "$2a$10$hash",
		Role:             "customer",
		Active:           true,
		Verified:         true,
		TokenVersion:     7,
		TelegramLinked:   true,
		TelegramChatID:   "123456789",
		TelegramUsername: "alice_tg",
		LastLogin:        &lastLogin,
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt.Add(time.Hour),
	}

	roundTripped := repo.dbToDomain(repo.domainToDB(user))

	assert.Equal(t, user.ID, roundTripped.ID)
	assert.Equal(t, user.Username, roundTripped.Username)
	assert.Equal(t, user.PasswordHash, roundTripped.PasswordHash)
	assert.Equal(t, user.Role, roundTripped.Role)
	assert.Equal(t, user.Active, roundTripped.Active)
	assert.Equal(t, user.Verified, roundTripped.Verified)
	assert.Equal(t, user.TokenVersion, roundTripped.TokenVersion)
	assert.Equal(t, user.TelegramLinked, roundTripped.TelegramLinked)
	assert.Equal(t, user.TelegramChatID, roundTripped.TelegramChatID)
	assert.Equal(t, user.TelegramUsername, roundTripped.TelegramUsername)
	assert.Equal(t, &lastLogin, roundTripped.LastLogin)

	// An update must not zero the row's timestamps.
	assert.Equal(t, createdAt, roundTripped.CreatedAt)
	assert.Equal(t, createdAt.Add(time.Hour), roundTripped.UpdatedAt)
}

func TestDBUser_TableName(t *testing.T) {
	assert.Equal(t, "users", DBUser{}.TableName())
}
