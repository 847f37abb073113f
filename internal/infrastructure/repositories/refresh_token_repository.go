package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// RefreshTokenRepositoryImpl implements domain.RefreshTokenRepository
// using GORM. A unique index on user_id enforces the one-live-token
// invariant at the storage level.
type RefreshTokenRepositoryImpl struct {
	db *gorm.DB
}

// DBRefreshToken represents the database model for RefreshToken
type DBRefreshToken struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex"`
	Token     string    `gorm:"uniqueIndex;size:255"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBRefreshToken) TableName() string {
	return "refresh_tokens"
}

// NewRefreshTokenRepository creates a new refresh token repository
func NewRefreshTokenRepository(db *gorm.DB) domain.RefreshTokenRepository {
	return &RefreshTokenRepositoryImpl{db: db}
}

// ReplaceForUser implements domain.RefreshTokenRepository. The upsert on
// user_id rotates the existing row instead of accumulating tokens.
func (r *RefreshTokenRepositoryImpl) ReplaceForUser(ctx context.Context, userID uint, token string, expiresAt time.Time) error {
	row := &DBRefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "expires_at", "updated_at"}),
	}).Create(row).Error
}

// FindByToken implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) FindByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	var row DBRefreshToken
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return &domain.RefreshToken{
		ID:        row.ID,
		UserID:    row.UserID,
		Token:     row.Token,
		ExpiresAt: row.ExpiresAt,
	}, nil
}

// DeleteForUser implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) DeleteForUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&DBRefreshToken{}).Error
}
