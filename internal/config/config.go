package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	AccessTTL  string `yaml:"access_ttl"`
	RefreshTTL string `yaml:"refresh_ttl"`
}

type LockoutConfig struct {
	Threshold int    `yaml:"threshold"`
	Window    string `yaml:"window"`
}

type PasswordConfig struct {
	MinLength      int `yaml:"min_length"`
	BcryptPoolSize int `yaml:"bcrypt_pool_size"`
}

type ResetConfig struct {
	TokenTTL string `yaml:"token_ttl"`
}

type NotificationsConfig struct {
	Channel string `yaml:"channel"`
	Timeout string `yaml:"timeout"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App           AppConfig           `yaml:"app"`
	Database      DatabaseConfig      `yaml:"database"`
	Redis         RedisConfig         `yaml:"redis"`
	JWT           JWTConfig           `yaml:"jwt"`
	Lockout       LockoutConfig       `yaml:"lockout"`
	Password      PasswordConfig      `yaml:"password"`
	Reset         ResetConfig         `yaml:"reset"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Telegram      TelegramConfig      `yaml:"telegram"`
	Twilio        TwilioConfig        `yaml:"twilio"`
	Casbin        CasbinConfig        `yaml:"casbin"`
}

type Config struct {
	Port                string
	GinMode             string
	DSN                 string
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	JWTSecret           string
	JWTIssuer           string
	AccessTTL           time.Duration
	RefreshTTL          time.Duration
	LockoutThreshold    int
	LockoutWindow       time.Duration
	MinPasswordLength   int
	BcryptPoolSize      int
	ResetTokenTTL       time.Duration
	NotificationChannel string
	NotificationTimeout time.Duration
	TelegramBotToken    string
	TwilioSID           string
	TwilioToken         string
	TwilioFrom          string
	CasbinModelPath     string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := time.ParseDuration(configFile.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	refTTL, err := time.ParseDuration(configFile.JWT.RefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT refresh TTL: %w", err)
	}

	lockoutWindow, err := time.ParseDuration(configFile.Lockout.Window)
	if err != nil {
		return nil, fmt.Errorf("invalid lockout window: %w", err)
	}

	resetTTL, err := time.ParseDuration(configFile.Reset.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid reset token TTL: %w", err)
	}

	notifTimeout, err := time.ParseDuration(configFile.Notifications.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid notification timeout: %w", err)
	}

	// Secrets come from the environment in deployed setups; the yaml
	// values are local-development defaults.
	return &Config{
		Port:                fmt.Sprintf("%d", configFile.App.Port),
		GinMode:             configFile.App.GinMode,
		DSN:                 env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:           env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:       env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:             configFile.Redis.DB,
		JWTSecret:           env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:           configFile.JWT.Issuer,
		AccessTTL:           accTTL,
		RefreshTTL:          refTTL,
		LockoutThreshold:    configFile.Lockout.Threshold,
		LockoutWindow:       lockoutWindow,
		MinPasswordLength:   configFile.Password.MinLength,
		BcryptPoolSize:      configFile.Password.BcryptPoolSize,
		ResetTokenTTL:       resetTTL,
		NotificationChannel: env("NOTIFICATION_CHANNEL", configFile.Notifications.Channel),
		NotificationTimeout: notifTimeout,
		TelegramBotToken:    env("TELEGRAM_BOT_TOKEN", configFile.Telegram.BotToken),
		TwilioSID:           env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:         env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:          env("TWILIO_FROM_NUMBER", configFile.Twilio.FromNumber),
		CasbinModelPath:     configFile.Casbin.ModelPath,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
