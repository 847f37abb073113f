package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID               uint       `gorm:"primaryKey"`
	Username         string     `gorm:"uniqueIndex;size:255"`
	PasswordHash     string     `gorm:"column:password_hash"`
	Role             string     `gorm:"index;size:64"`
	IsActive         bool       `gorm:"index"`
	Verified         bool       `gorm:"index"`
	VerificationCode string     `gorm:"size:64"`
	TokenVersion     int        `gorm:"default:1"`
	TelegramLinked   bool       `gorm:"column:is_telegram_linked"`
	TelegramChatID   string     `gorm:"column:telegram_chat_id;size:64"`
	TelegramUsername string     `gorm:"size:255"`
	LastLogin        *time.Time
	CreatedAt        time.Time      `gorm:"index"`
	UpdatedAt        time.Time      `gorm:"index"`
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByUsername implements domain.UserRepository
func (r *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	return r.db.WithContext(ctx).Save(dbUser).Error
}

// BumpVersionAndRevoke implements domain.UserRepository. The user row
// update and the refresh token purge commit together; callers only see
// success after the revocation is fully applied.
func (r *UserRepositoryImpl) BumpVersionAndRevoke(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(r.domainToDB(user)).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", user.ID).Delete(&DBRefreshToken{}).Error
	})
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:               user.ID,
		Username:         user.Username,
		PasswordHash:     user.PasswordHash,
		Role:             user.Role,
		IsActive:         user.Active,
		Verified:         user.Verified,
		VerificationCode: user.VerificationCode,
		TokenVersion:     user.TokenVersion,
		TelegramLinked:   user.TelegramLinked,
		TelegramChatID:   user.TelegramChatID,
		TelegramUsername: user.TelegramUsername,
		LastLogin:        user.LastLogin,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:               dbUser.ID,
		Username:         dbUser.Username,
		PasswordHash:     dbUser.PasswordHash,
		Role:             dbUser.Role,
		Active:           dbUser.IsActive,
		Verified:         dbUser.Verified,
		VerificationCode: dbUser.VerificationCode,
		TokenVersion:     dbUser.TokenVersion,
		TelegramLinked:   dbUser.TelegramLinked,
		TelegramChatID:   dbUser.TelegramChatID,
		TelegramUsername: dbUser.TelegramUsername,
		LastLogin:        dbUser.LastLogin,
		CreatedAt:        dbUser.CreatedAt,
		UpdatedAt:        dbUser.UpdatedAt,
	}
}
