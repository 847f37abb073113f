package app

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/flizwph/clothing-brand-sub001/domain"
	"github.com/flizwph/clothing-brand-sub001/internal/config"
	"github.com/flizwph/clothing-brand-sub001/internal/dispatch"
	"github.com/flizwph/clothing-brand-sub001/internal/infrastructure/audit"
	"github.com/flizwph/clothing-brand-sub001/internal/infrastructure/auth"
	"github.com/flizwph/clothing-brand-sub001/internal/infrastructure/identity"
	"github.com/flizwph/clothing-brand-sub001/internal/infrastructure/notifications"
	"github.com/flizwph/clothing-brand-sub001/internal/infrastructure/repositories"
	"github.com/flizwph/clothing-brand-sub001/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Logger *logrus.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	// Repositories
	UserRepo    domain.UserRepository
	RefreshRepo domain.RefreshTokenRepository
	ResetRepo   domain.PasswordResetTokenRepository

	// Services
	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	Throttle    domain.LoginThrottle
	Guard       domain.TokenGuard
	Notifier    domain.NotificationChannel
	IdentitySvc domain.IdentityProvider
	Audit       domain.AuditSink
	AuthSvc     domain.AuthService
	ResetSvc    domain.PasswordResetService
	PolicySvc   domain.PolicyService

	// Dispatch
	Registry *dispatch.Registry
}

// NewContainer wires every dependency on top of already-opened
// connections. Connection setup stays in Run so the container is usable
// from integration tests with their own databases.
func NewContainer(cfg *config.Config, db *gorm.DB, rdb *redis.Client, cas *auth.CasbinService) (*Container, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	c := &Container{
		Config:      cfg,
		Logger:      logger,
		DB:          db,
		RedisClient: rdb,
		Casbin:      cas,
	}

	c.initRepositories()
	if err := c.initServices(); err != nil {
		return nil, err
	}

	registry, err := dispatch.NewAuthRegistry(c.AuthSvc, c.Guard, c.ResetSvc)
	if err != nil {
		return nil, fmt.Errorf("failed to build dispatch registry: %w", err)
	}
	c.Registry = registry

	return c, nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.RefreshRepo = repositories.NewRefreshTokenRepository(c.DB)
	c.ResetRepo = repositories.NewResetTokenRepository(c.RedisClient)
}

func (c *Container) initServices() error {
	log := logrus.NewEntry(c.Logger)

	c.Audit = audit.NewLogrusSink(c.Logger)
	c.PasswordSvc = auth.NewPasswordService(c.Config.BcryptPoolSize)
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.AccessTTL)
	c.Throttle = services.NewLoginThrottle(c.RedisClient, services.ThrottleConfig{
		Threshold:     c.Config.LockoutThreshold,
		LockoutWindow: c.Config.LockoutWindow,
	})
	c.Guard = services.NewTokenGuard(c.UserRepo, c.TokenSvc, log)

	notifier, err := c.buildNotifier(log)
	if err != nil {
		return err
	}
	c.Notifier = notifier

	c.IdentitySvc = identity.NewTelegramProvider(c.UserRepo, c.Audit, log)

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.RefreshRepo,
		c.Throttle,
		c.PasswordSvc,
		c.TokenSvc,
		c.Guard,
		c.Audit,
		log,
		services.AuthConfig{
			RefreshTokenTTL:   c.Config.RefreshTTL,
			MinPasswordLength: c.Config.MinPasswordLength,
		},
	)

	c.ResetSvc = services.NewPasswordResetService(
		c.UserRepo,
		c.ResetRepo,
		c.PasswordSvc,
		c.Guard,
		c.Notifier,
		c.Audit,
		log,
		services.ResetConfig{
			TokenTTL:          c.Config.ResetTokenTTL,
			MinPasswordLength: c.Config.MinPasswordLength,
		},
	)

	c.PolicySvc = services.NewPolicyService(c.Casbin.E)

	return nil
}

func (c *Container) buildNotifier(log *logrus.Entry) (domain.NotificationChannel, error) {
	switch c.Config.NotificationChannel {
	case "", "telegram":
		return notifications.NewTelegramService(c.Config.TelegramBotToken, c.Config.NotificationTimeout, log)
	case "twilio":
		return notifications.NewTwilioService(
			c.Config.TwilioSID,
			c.Config.TwilioToken,
			c.Config.TwilioFrom,
			c.Config.NotificationTimeout,
			log,
		), nil
	default:
		return nil, fmt.Errorf("unknown notification channel %q", c.Config.NotificationChannel)
	}
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
