package config

import (
	"fmt"
	"time"

	"go-sitepass/internal/shared/connection"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`
	Port   string `env:"PORT" envDefault:"3000"`

	DB    DBConfig
	Redis RedisConfig
	Kafka KafkaConfig
	Auth  AuthConfig
	SMS   SMSConfig
	Jobs  JobsConfig

	DefaultTimezone     string `env:"DEFAULT_TIMEZONE" envDefault:"Asia/Seoul"`
	DefaultDayStartHour int    `env:"DEFAULT_DAY_START_HOUR" envDefault:"4"`
	InviteBaseURL       string `env:"INVITE_BASE_URL" envDefault:"https://app.sitepass.local"`
}

type DBConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"sitepass"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	Retries  int    `env:"DB_CONNECT_RETRIES" envDefault:"5"`
}

func (c DBConfig) Postgres() connection.PostgresConfig {
	return connection.PostgresConfig{
		Host:     c.Host,
		User:     c.User,
		Password: c.Password,
		Name:     c.Name,
		Port:     c.Port,
		SSLMode:  c.SSLMode,
	}
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
}

type KafkaConfig struct {
	Broker        string `env:"KAFKA_BROKER"`
	ConsumerGroup string `env:"KAFKA_CONSUMER_GROUP" envDefault:"sitepass-worker-notifications"`
}

type AuthConfig struct {
	JWTSecret          string        `env:"JWT_SECRET,required,notEmpty"`
	VerificationSecret string        `env:"VERIFICATION_SECRET"`
	InviteSecret       string        `env:"INVITE_SECRET"`
	QRSecret           string        `env:"QR_SECRET"`
	AccessTokenTTL     time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"1h"`
	RefreshTokenTTL    time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"720h"`
}

type SMSConfig struct {
	TwilioAccountSID string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `env:"TWILIO_FROM_NUMBER"`
}

// Enabled reports whether real SMS delivery is configured.
func (c SMSConfig) Enabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

type JobsConfig struct {
	AutoCloseSchedule           string        `env:"AUTO_CLOSE_SCHEDULE" envDefault:"@every 5m"`
	VerificationCleanupSchedule string        `env:"VERIFICATION_CLEANUP_SCHEDULE" envDefault:"@every 1h"`
	OutboxPollInterval          time.Duration `env:"OUTBOX_POLL_INTERVAL" envDefault:"3s"`
	OutboxPurgeSchedule         string        `env:"OUTBOX_PURGE_SCHEDULE" envDefault:"@every 6h"`
	OutboxRetention             time.Duration `env:"OUTBOX_RETENTION" envDefault:"72h"`
}

// Load parses the environment. Secrets that are not set separately fall back
// to JWT_SECRET.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Auth.VerificationSecret == "" {
		cfg.Auth.VerificationSecret = cfg.Auth.JWTSecret
	}
	if cfg.Auth.InviteSecret == "" {
		cfg.Auth.InviteSecret = cfg.Auth.JWTSecret
	}
	if cfg.Auth.QRSecret == "" {
		cfg.Auth.QRSecret = cfg.Auth.JWTSecret
	}
	if cfg.DefaultDayStartHour < 0 || cfg.DefaultDayStartHour > 23 {
		return Config{}, fmt.Errorf("DEFAULT_DAY_START_HOUR must be within 0..23, got %d", cfg.DefaultDayStartHour)
	}
	if _, err := time.LoadLocation(cfg.DefaultTimezone); err != nil {
		return Config{}, fmt.Errorf("DEFAULT_TIMEZONE: %w", err)
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
