// Package config loads service settings from a dotenv file and the process environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrEmptyJWTSecret  = errors.New("jwt secret must not be empty")
	ErrInvalidAppPort  = errors.New("application port must not be empty")
	ErrInvalidOTPTTL   = errors.New("otp ttl must be positive")
	ErrIncompleteSMTP  = errors.New("smtp host is set but sender address is empty")
	ErrIncompleteKafka = errors.New("kafka brokers are set but topic is empty")
	ErrIncompleteAdmin = errors.New("admin user is set but admin password is empty")
)

// App holds HTTP server settings.
type App struct {
	Host          string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port          string `env:"APP_PORT" envDefault:"3000"`
	LogLevel      string `env:"APP_LOG_LEVEL" envDefault:"info"`
	AuthRequired  bool   `env:"APP_AUTH_REQUIRED" envDefault:"false"`
	AdminUser     string `env:"ADMIN_USER"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Postgres holds record store settings.
type Postgres struct {
	Host         string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port         int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User         string `env:"POSTGRES_USER" envDefault:"user"`
	Password     string `env:"POSTGRES_PASSWORD" envDefault:"password"`
	DB           string `env:"POSTGRES_DB" envDefault:"vibecare"`
	SSLMode      string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"16"`
	MaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"8"`
}

// DSN renders the pgx connection string.
func (p Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DB, p.SSLMode)
}

// Redis holds OTP cache settings.
type Redis struct {
	Host         string `env:"REDIS_HOST" envDefault:"localhost"`
	Port         int    `env:"REDIS_PORT" envDefault:"6379"`
	DB           int    `env:"REDIS_DB" envDefault:"0"`
	Password     string `env:"REDIS_PASSWORD"`
	PoolSize     int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
}

// Addr renders host:port.
func (r Redis) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWT holds token issuance settings.
type JWT struct {
	Secret     string        `env:"JWT_SECRET" envDefault:"my_super_secret_key"`
	Expiration time.Duration `env:"JWT_EXPIRATION" envDefault:"1h"`
}

// SMTP holds outbound mail settings. An empty host disables delivery.
type SMTP struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	User     string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

// Kafka holds domain event settings. No brokers disables publishing.
type Kafka struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	Topic   string   `env:"KAFKA_TOPIC" envDefault:"vibecare.events"`
}

// Prediction holds the inference service location.
type Prediction struct {
	URL     string        `env:"PREDICTION_URL" envDefault:"http://localhost:5000"`
	Timeout time.Duration `env:"PREDICTION_TIMEOUT" envDefault:"15s"`
}

// OTP holds one-time password settings.
type OTP struct {
	TTL time.Duration `env:"OTP_TTL" envDefault:"15m"`
}

// Config is the full service configuration.
type Config struct {
	App        App
	Postgres   Postgres
	Redis      Redis
	JWT        JWT
	SMTP       SMTP
	Kafka      Kafka
	Prediction Prediction
	OTP        OTP
}

// Load reads the dotenv file at path (a missing file is ignored), then parses
// the environment into a Config and validates it.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if strings.TrimSpace(c.JWT.Secret) == "" {
		errs = append(errs, ErrEmptyJWTSecret)
	}
	if strings.TrimSpace(c.App.Port) == "" {
		errs = append(errs, ErrInvalidAppPort)
	}
	if c.OTP.TTL <= 0 {
		errs = append(errs, ErrInvalidOTPTTL)
	}
	if c.SMTP.Host != "" && c.SMTP.From == "" {
		errs = append(errs, ErrIncompleteSMTP)
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		errs = append(errs, ErrIncompleteKafka)
	}
	if c.App.AdminUser != "" && c.App.AdminPassword == "" {
		errs = append(errs, ErrIncompleteAdmin)
	}
	return errors.Join(errs...)
}
